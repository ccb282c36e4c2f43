package core

// Color is the foreground color of a screen cell. Values name what is drawn
// rather than a hue; the terminal front-end maps them to ANSI 256 codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorSteel         // armoured knight
	ColorSkin          // knight without armour
	ColorFrog
	ColorZombie
	ColorPlant
	ColorMagic
	ColorHazard // enemy projectiles
	ColorFire
	ColorEarth
	ColorStone
	ColorWood
	ColorGold
	ColorText
	ColorAlert
	ColorDim
)

var ansiCodes = [...]string{
	ColorDefault: "",
	ColorSteel:   "252",
	ColorSkin:    "217",
	ColorFrog:    "40",
	ColorZombie:  "108",
	ColorPlant:   "34",
	ColorMagic:   "171",
	ColorHazard:  "196",
	ColorFire:    "208",
	ColorEarth:   "94",
	ColorStone:   "243",
	ColorWood:    "130",
	ColorGold:    "220",
	ColorText:    "15",
	ColorAlert:   "203",
	ColorDim:     "240",
}

// ANSI returns the 256-color palette index of c, or "" for the terminal
// default.
func (c Color) ANSI() string {
	if int(c) < len(ansiCodes) {
		return ansiCodes[c]
	}
	return ""
}
