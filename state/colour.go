package state

// colours lists the dye colours by their wool metadata index.
var colours = [16]string{
	"white", "orange", "magenta", "light_blue",
	"yellow", "lime", "pink", "gray",
	"light_gray", "cyan", "purple", "blue",
	"brown", "green", "red", "black",
}

// Colour returns the name of the dye colour with the given index.
func Colour(i int) (string, bool) {
	if i < 0 || i >= len(colours) {
		return "", false
	}
	return colours[i], true
}

// ColourIndex returns the index of a dye colour name, or -1.
func ColourIndex(name string) int {
	for i, c := range colours {
		if c == name {
			return i
		}
	}
	return -1
}
