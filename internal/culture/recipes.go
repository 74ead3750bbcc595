package culture

// Join selects how resolved slot values combine into a full name.
type Join int

const (
	// JoinSpace joins slots with single spaces.
	JoinSpace Join = iota
	// JoinDash joins slots with " - ".
	JoinDash
	// JoinGenitive renders "The {first} {second} of {cycle event}".
	JoinGenitive
)

// Slot is one position in a culture's naming recipe.
type Slot struct {
	// Override names the caller-supplied override key honored for this
	// slot. Empty means the slot cannot be overridden.
	Override string
	// Pool names the vocabulary pool the slot draws from. For a few
	// cultures this deliberately differs from the override key; the
	// mismatches are part of the inherited naming conventions and are
	// kept verbatim.
	Pool string
	// Fallback is used when the pool is empty or absent.
	Fallback string
}

// Recipe is a culture's full naming convention: ordered slots, a join
// style, and whether composing a name touches the cycle/event cache.
type Recipe struct {
	Slots []Slot
	Join  Join
	// Cycle marks recipes that draw a cycle number and resolve it to a
	// narrative event while composing. Only the genitive join displays
	// the event, but every cycling culture still populates the cache.
	Cycle bool
}

// Recipes maps each supported culture to its naming recipe. Adding a
// culture is a data change here plus a vocabulary file; unsupported
// identifiers are a configuration error at compose time.
var Recipes = map[string]Recipe{
	"Constructs": {
		Slots: []Slot{
			{Pool: "titles", Fallback: "Construct"},
		},
		Join: JoinSpace,
	},
	"Unrooted": {
		Slots: []Slot{
			{Override: "mothertree", Pool: "mothertree", Fallback: "of ˈfilʃɛ"},
			{Pool: "name", Fallback: "ʒij"},
		},
		Join:  JoinGenitive,
		Cycle: true,
	},
	"Valain": {
		Slots: []Slot{
			{Override: "titles", Pool: "titles", Fallback: "Alpha"},
			{Pool: "name", Fallback: "kal"},
			{Pool: "traits", Fallback: "The Swift"},
			{Override: "dominion", Pool: "dominion", Fallback: "Fire"},
		},
		Join:  JoinSpace,
		Cycle: true,
	},
	"Oonar": {
		Slots: []Slot{
			{Override: "processes", Pool: "processes", Fallback: "autolysee"},
			{Pool: "name", Fallback: "tu"},
		},
		Join:  JoinSpace,
		Cycle: true,
	},
	"Aumian": {
		Slots: []Slot{
			{Override: "function", Pool: "function", Fallback: "Worker"},
			{Override: "heritage", Pool: "heritage", Fallback: "Descendant of Worker ˌgalpuʒˈvɑdɑl"},
			{Pool: "name", Fallback: "tup"},
		},
		Join:  JoinSpace,
		Cycle: true,
	},
	"DriftersSky": {
		Slots: []Slot{
			{Override: "autotroph", Pool: "autotroph", Fallback: "Mosi"},
			{Pool: "name", Fallback: "ˈmɑmir"},
			{Pool: "character", Fallback: "The free"},
		},
		Join:  JoinSpace,
		Cycle: true,
	},
	"DriftersSea": {
		Slots: []Slot{
			{Override: "depth", Pool: "depth", Fallback: "surface"},
			{Pool: "name", Fallback: "ken"},
			{Override: "clan_names", Pool: "clan_names", Fallback: "Rafters"},
		},
		Join:  JoinSpace,
		Cycle: true,
	},
	"DriftersLand": {
		Slots: []Slot{
			{Override: "depth", Pool: "title", Fallback: "surface"},
			{Pool: "name", Fallback: "ken"},
			{Override: "clan_names", Pool: "character", Fallback: "Rafters"},
		},
		Join:  JoinSpace,
		Cycle: true,
	},
	"Norian": {
		Slots: []Slot{
			{Override: "depth", Pool: "generation", Fallback: "lost"},
			{Pool: "name", Fallback: "Astaj"},
			{Override: "family", Pool: "family", Fallback: "Root"},
		},
		Join:  JoinSpace,
		Cycle: true,
	},
	"Napa": {
		Slots: []Slot{
			{Pool: "name", Fallback: "Kelvin"},
			{Override: "homestead", Pool: "homestead", Fallback: "Stonecroft"},
		},
		Join:  JoinDash,
		Cycle: true,
	},
	"Pi": {
		Slots: []Slot{
			{Pool: "something_cool", Fallback: "Creative Juice"},
			{Pool: "cool_name", Fallback: "tav"},
		},
		Join:  JoinSpace,
		Cycle: true,
	},
}

// Supported reports whether a recipe exists for the culture.
func Supported(cultureID string) bool {
	_, ok := Recipes[cultureID]
	return ok
}
