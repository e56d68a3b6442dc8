package config

// EntityKind is the closed set of things a level can contain
type EntityKind int

const (
	KindNone EntityKind = iota
	KindPlayer
	KindDoor
	KindSpikes
	KindButton
	KindInflator
	KindCrown
	KindCount // Must be last - used for array sizing
)

var kindNames = [KindCount]string{
	KindNone:     "None",
	KindPlayer:   "Player",
	KindDoor:     "Door",
	KindSpikes:   "Spikes",
	KindButton:   "Button",
	KindInflator: "Inflator",
	KindCrown:    "Crown",
}

func (k EntityKind) String() string {
	if k < 0 || k >= KindCount {
		return "Unknown"
	}
	return kindNames[k]
}

// KindByName maps a TMX object class to its kind.
func KindByName(name string) (EntityKind, bool) {
	for i, n := range kindNames {
		if n == name && EntityKind(i) != KindNone {
			return EntityKind(i), true
		}
	}
	return KindNone, false
}
