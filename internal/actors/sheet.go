package actors

import (
	"strings"

	"github.com/vovakirdan/tui-goblins/internal/engine"
)

// Region is a rectangle on the sprite sheet, in sheet pixels.
type Region struct {
	X, Y, W, H int
}

// Sprite families. A SpriteID is "<family>/<frame>".
const (
	FamilyKnight   = "knight"
	FamilyWalker   = "walker"
	FamilyPlant    = "plant"
	FamilyMagician = "magician"
	FamilyEyeball  = "eyeball"
	FamilyBolt     = "bolt"
	FamilyTorch    = "torch"
	FamilyFlame    = "flame"
)

// bareOffset is the vertical distance from an armoured frame to the
// matching frame without armour.
const bareOffset = 66

func spriteID(family, frame string) engine.SpriteID {
	return engine.SpriteID(family + "/" + frame)
}

// Family returns the family part of a sprite id.
func Family(id engine.SpriteID) string {
	family, _, _ := strings.Cut(string(id), "/")
	return family
}

var sheet = map[engine.SpriteID]Region{}

// fallbacks holds the frame used when a family lacks the requested one.
var fallbacks = map[string]engine.SpriteID{
	FamilyKnight:   spriteID(FamilyKnight, "IdleRight"),
	FamilyWalker:   spriteID(FamilyWalker, "Walk3Right"),
	FamilyPlant:    spriteID(FamilyPlant, "IdleRight"),
	FamilyMagician: spriteID(FamilyPlant, "IdleRight"),
	FamilyBolt:     spriteID(FamilyEyeball, "Right"),
}

func addFrames(family string, frames map[string][4]int) {
	for name, r := range frames {
		sheet[spriteID(family, name)] = Region{X: r[0], Y: r[1], W: r[2], H: r[3]}
	}
}

func init() {
	knight := map[string][4]int{
		"IdleRight":      {134, 609, 20, 31},
		"IdleLeft":       {358, 609, 20, 31},
		"Running1Right":  {5, 608, 23, 32},
		"Running2Right":  {39, 608, 18, 32},
		"Running3Right":  {72, 608, 19, 32},
		"Running4Right":  {102, 608, 24, 32},
		"Running1Left":   {484, 608, 23, 32},
		"Running2Left":   {454, 608, 18, 32},
		"Running3Left":   {421, 608, 19, 32},
		"Running4Left":   {386, 608, 24, 32},
		"JumpUpRight":    {160, 613, 32, 27},
		"JumpDownRight":  {194, 613, 27, 27},
		"JumpUpLeft":     {320, 613, 32, 27},
		"JumpDownLeft":   {291, 613, 27, 27},
		"ClimbingRight":  {133, 642, 21, 30},
		"ClimbingLeft":   {358, 642, 21, 30},
		"HurtRight":      {0, 740, 25, 28},
		"HurtLeft":       {487, 740, 25, 28},
		"Dead1Right":     {64, 740, 25, 28},
		"Dead2Right":     {96, 740, 31, 28},
		"Dead3Right":     {128, 743, 29, 25},
		"Dead4Right":     {160, 740, 28, 12},
		"Dead5Right":     {160, 756, 28, 12},
		"Dead1Left":      {423, 740, 25, 28},
		"Dead2Left":      {385, 740, 31, 28},
		"Dead3Left":      {354, 743, 29, 25},
		"Dead4Left":      {324, 740, 28, 12},
		"Dead5Left":      {324, 756, 28, 12},
		"WonRight":       {256, 704, 32, 32},
		"WonLeft":        {224, 704, 32, 32},
		"FrogWalk1Right": {99, 903, 25, 25},
		"FrogWalk2Right": {128, 903, 29, 25},
		"FrogWalk3Right": {166, 903, 20, 25},
		"FrogWalk4Right": {198, 903, 20, 25},
		"FrogWalk1Left":  {388, 903, 25, 25},
		"FrogWalk2Left":  {355, 903, 29, 25},
		"FrogWalk3Left":  {325, 903, 20, 25},
		"FrogWalk4Left":  {294, 903, 20, 25},
	}
	addFrames(FamilyKnight, knight)

	// Armourless variants sit below their armoured frames and are two
	// pixels shorter.
	for _, name := range []string{
		"IdleRight", "IdleLeft",
		"Running1Right", "Running2Right", "Running3Right", "Running4Right",
		"Running1Left", "Running2Left", "Running3Left", "Running4Left",
		"JumpUpRight", "JumpDownRight", "JumpUpLeft", "JumpDownLeft",
		"ClimbingRight", "ClimbingLeft",
	} {
		r := knight[name]
		sheet[spriteID(FamilyKnight, name+"Bare")] = Region{X: r[0], Y: r[1] + bareOffset, W: r[2], H: r[3] - 2}
	}

	addFrames(FamilyWalker, map[string][4]int{
		"Spawn1Left":  {512, 88, 16, 9},
		"Spawn2Left":  {533, 85, 24, 12},
		"Spawn3Left":  {562, 73, 19, 24},
		"Spawn1Right": {778, 88, 16, 9},
		"Spawn2Right": {748, 85, 24, 12},
		"Spawn3Right": {725, 73, 19, 24},
		"Walk1Left":   {585, 66, 22, 31},
		"Walk2Left":   {610, 65, 19, 32},
		"Walk3Left":   {631, 66, 21, 31},
		"Walk1Right":  {699, 66, 22, 31},
		"Walk2Right":  {677, 65, 19, 32},
		"Walk3Right":  {654, 66, 21, 31},
	})

	addFrames(FamilyPlant, map[string][4]int{
		"IdleLeft":       {564, 207, 16, 32},
		"Shooting1Left":  {582, 207, 16, 32},
		"Shooting2Left":  {600, 207, 16, 32},
		"Shooting3Left":  {618, 207, 16, 32},
		"Shooting4Left":  {636, 207, 16, 32},
		"IdleRight":      {726, 207, 16, 32},
		"Shooting1Right": {708, 207, 16, 32},
		"Shooting2Right": {690, 207, 16, 32},
		"Shooting3Right": {672, 207, 16, 32},
		"Shooting4Right": {654, 207, 16, 32},
	})

	addFrames(FamilyEyeball, map[string][4]int{
		"Left":  {575, 51, 10, 11},
		"Right": {721, 51, 10, 11},
	})

	addFrames(FamilyTorch, map[string][4]int{
		"0": {0, 896, 14, 13},
		"1": {19, 896, 13, 14},
	})

	addFrames(FamilyFlame, map[string][4]int{
		"0": {228, 744, 23, 23},
		"1": {192, 736, 32, 32},
	})
}

// LookupRegion resolves a sprite id to its sheet region. Unknown frames fall
// back to the family default, then to the knight idle frame, so rendering
// never fails on a missing entry. The boolean reports an exact match.
func LookupRegion(id engine.SpriteID) (Region, bool) {
	if r, ok := sheet[id]; ok {
		return r, true
	}
	if fb, ok := fallbacks[Family(id)]; ok {
		return sheet[fb], false
	}
	return sheet[fallbacks[FamilyKnight]], false
}
