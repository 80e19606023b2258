package constants

// Icons offered by the add/edit forms.
var Icons = []string{"💧", "💪", "📚", "🧘", "🚶", "🌱", "✍️", "🎵", "🍎", "😴", "🧹", "💰"}

// Colors are gradient tokens; the UI maps them to terminal colors.
var Colors = []string{
	"from-blue-400 to-cyan-400",
	"from-purple-400 to-pink-400",
	"from-green-400 to-emerald-400",
	"from-orange-400 to-red-400",
	"from-yellow-400 to-orange-400",
	"from-indigo-400 to-purple-400",
	"from-pink-400 to-rose-400",
	"from-teal-400 to-cyan-400",
}

// Images are the optional artwork references a habit can carry.
var Images = []string{
	"/3d-rendering-young-tiger.jpg",
	"/cartoon-animated-penguin-with-headphones.jpg",
}

// ColorSwatches maps a gradient token to a 256-color terminal code.
var ColorSwatches = map[string]string{
	"from-blue-400 to-cyan-400":     "39",
	"from-purple-400 to-pink-400":   "171",
	"from-green-400 to-emerald-400": "42",
	"from-orange-400 to-red-400":    "202",
	"from-yellow-400 to-orange-400": "214",
	"from-indigo-400 to-purple-400": "99",
	"from-pink-400 to-rose-400":     "205",
	"from-teal-400 to-cyan-400":     "37",
}
