package domain

// Center identifies a vaccination location
type Center string

const (
	CenterA Center = "CenterA"
	CenterB Center = "CenterB"
	CenterC Center = "CenterC"
	CenterD Center = "CenterD"
)

// Centers фиксированный список центров вакцинации
var Centers = []Center{CenterA, CenterB, CenterC, CenterD}

// IsValid returns true if the center belongs to the fixed set
func (c Center) IsValid() bool {
	for _, known := range Centers {
		if c == known {
			return true
		}
	}
	return false
}

func (c Center) String() string {
	return string(c)
}
