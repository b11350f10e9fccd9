package sizes

// Entry is one output file of a size table: a filename and its square pixel size
type Entry struct {
	Name string `yaml:"name"`
	Size int    `yaml:"size"`
}

// Density is an Android mipmap bucket with its launcher and adaptive foreground sizes
type Density struct {
	Name       string `yaml:"name"`
	Launcher   int    `yaml:"launcher"`
	Foreground int    `yaml:"foreground"`
}

// Tables holds every size table the generator renders
type Tables struct {
	Desktop       []Entry   `yaml:"desktop"`        // padded, macOS-style
	WindowsSquare []Entry   `yaml:"windows_square"` // unpadded Windows Store logos
	MacIconset    []Entry   `yaml:"mac_iconset"`
	ICO           []int     `yaml:"ico"`
	Android       []Density `yaml:"android"`
	IOS           []Entry   `yaml:"ios"`
}

// Desktop icons written with the macOS safe margin applied
var Desktop = []Entry{
	{"icon.png", 512},
	{"16.png", 16},
	{"32x32.png", 32},
	{"64x64.png", 64},
	{"128x128.png", 128},
	{"128x128@2x.png", 256},
}

// WindowsSquare logos are rendered without padding
var WindowsSquare = []Entry{
	{"Square30x30Logo.png", 30},
	{"Square44x44Logo.png", 44},
	{"Square71x71Logo.png", 71},
	{"Square89x89Logo.png", 89},
	{"Square107x107Logo.png", 107},
	{"Square142x142Logo.png", 142},
	{"Square150x150Logo.png", 150},
	{"Square284x284Logo.png", 284},
	{"Square310x310Logo.png", 310},
	{"StoreLogo.png", 50},
}

// MacIconset is the fixed layout iconutil expects inside an .iconset directory
var MacIconset = []Entry{
	{"icon_16x16.png", 16},
	{"icon_16x16@2x.png", 32},
	{"icon_32x32.png", 32},
	{"icon_32x32@2x.png", 64},
	{"icon_128x128.png", 128},
	{"icon_128x128@2x.png", 256},
	{"icon_256x256.png", 256},
	{"icon_256x256@2x.png", 512},
	{"icon_512x512.png", 512},
	{"icon_512x512@2x.png", 1024},
}

// ICO frame sizes. 256 is the largest size the format can describe.
var ICO = []int{16, 24, 32, 48, 64, 128, 256}

// Android mipmap densities
var Android = []Density{
	{"mipmap-mdpi", 48, 108},
	{"mipmap-hdpi", 72, 162},
	{"mipmap-xhdpi", 96, 216},
	{"mipmap-xxhdpi", 144, 324},
	{"mipmap-xxxhdpi", 192, 432},
}

// IOS app icon files. The @2x and @2x-1 pairs share a size on purpose: the asset
// catalog references both names (iPhone and iPad slots).
var IOS = []Entry{
	{"AppIcon-20x20@1x.png", 20},
	{"AppIcon-20x20@2x.png", 40},
	{"AppIcon-20x20@2x-1.png", 40},
	{"AppIcon-20x20@3x.png", 60},
	{"AppIcon-29x29@1x.png", 29},
	{"AppIcon-29x29@2x.png", 58},
	{"AppIcon-29x29@2x-1.png", 58},
	{"AppIcon-29x29@3x.png", 87},
	{"AppIcon-40x40@1x.png", 40},
	{"AppIcon-40x40@2x.png", 80},
	{"AppIcon-40x40@2x-1.png", 80},
	{"AppIcon-40x40@3x.png", 120},
	{"AppIcon-60x60@2x.png", 120},
	{"AppIcon-60x60@3x.png", 180},
	{"AppIcon-76x76@1x.png", 76},
	{"AppIcon-76x76@2x.png", 152},
	{"AppIcon-83.5x83.5@2x.png", 167},
	{"AppIcon-512@2x.png", 1024},
}

// Default returns copies of the built-in tables
func Default() Tables {
	return Tables{
		Desktop:       append([]Entry(nil), Desktop...),
		WindowsSquare: append([]Entry(nil), WindowsSquare...),
		MacIconset:    append([]Entry(nil), MacIconset...),
		ICO:           append([]int(nil), ICO...),
		Android:       append([]Density(nil), Android...),
		IOS:           append([]Entry(nil), IOS...),
	}
}
