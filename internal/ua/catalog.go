package ua

const (
	webKit537 = "AppleWebKit/537.36 (KHTML, like Gecko)"
	webKit605 = "AppleWebKit/605.1.15 (KHTML, like Gecko)"
	gecko     = "Gecko/20100101"
)

// Browser pairs a browser identifier with the rendering engine token that
// precedes it in a generated agent.
type Browser struct {
	Name   string
	Engine string
}

// Category is an operating system family together with the OS version
// strings and browsers that may be combined with it.
type Category struct {
	Name       string
	OSVersions []string
	Browsers   []Browser
}

// catalog is ordered; generation and seeded output depend on that order.
var catalog = []Category{
	{
		Name: "Windows",
		OSVersions: []string{
			"Windows NT 11.0; Win64; x64",
			"Windows NT 10.0; Win64; x64",
			"Windows NT 10.0; WOW64",
			"Windows NT 6.3; Win64; x64",
			"Windows NT 6.1; Win64; x64",
			"Windows NT 6.0; Win32",
			"Windows NT 5.1; Win32",
		},
		Browsers: []Browser{
			{"Chrome/105.0.5195.102", webKit537},
			{"Firefox/105.0", gecko},
			{"Edg/105.0.1343.27", webKit537},
			{"OPR/90.0.4480.84", webKit537},
			{"Vivaldi/5.4.2753.40", webKit537},
			{"Brave/1.43.89", webKit537},
			{"Maxthon/6.1.3.3000", webKit537},
			{"YaBrowser/22.9.3.779", webKit537},
			{"MSIE 11.0", "Trident/7.0"},
		},
	},
	{
		Name: "macOS",
		OSVersions: []string{
			"Macintosh; Intel Mac OS X 13_0",
			"Macintosh; Intel Mac OS X 12_6",
			"Macintosh; Intel Mac OS X 11_6_7",
			"Macintosh; Intel Mac OS X 10_15_7",
			"Macintosh; Intel Mac OS X 10_14_6",
		},
		Browsers: []Browser{
			{"Safari/605.1.15", webKit605},
			{"Chrome/105.0.5195.102", webKit537},
			{"Firefox/105.0", gecko},
			{"OPR/90.0.4480.84", webKit537},
			{"Vivaldi/5.4.2753.40", webKit537},
			{"Brave/1.43.89", webKit537},
		},
	},
	{
		Name: "Linux",
		OSVersions: []string{
			"X11; Ubuntu; Linux x86_64",
			"X11; Fedora; Linux x86_64",
			"X11; Debian; Linux x86_64",
			"X11; Arch Linux; Linux x86_64",
			"X11; CentOS; Linux x86_64",
			"X11; Red Hat Enterprise Linux; Linux x86_64",
		},
		Browsers: []Browser{
			{"Chrome/105.0.5195.102", webKit537},
			{"Firefox/105.0", gecko},
			{"OPR/90.0.4480.84", webKit537},
			{"Vivaldi/5.4.2753.40", webKit537},
			{"Brave/1.43.89", webKit537},
		},
	},
	{
		Name: "Android",
		OSVersions: []string{
			"Linux; Android 13; SM-G998U Build/TP1A.220624.014",
			"Linux; Android 12; Pixel 6 Build/SD2A.210817.036",
			"Linux; Android 11; ONEPLUS A6013 Build/QKQ1.190716.003",
			"Linux; Android 10; HUAWEI ELE-L29 Build/HUAWEIELE-L29",
			"Android 9; Mobile",
		},
		Browsers: []Browser{
			{"Chrome/105.0.5195.79 Mobile", webKit537},
			{"SamsungBrowser/18.0", webKit537},
			{"UCBrowser/14.2.0.1162", webKit537},
			{"OPR/64.2.3282.61404", webKit537},
			{"DuckDuckGo/7.65.3", webKit537},
		},
	},
	{
		Name: "iOS",
		OSVersions: []string{
			"iPhone; CPU iPhone OS 16_0 like Mac OS X",
			"iPad; CPU OS 15_6 like Mac OS X",
			"iPod touch; CPU iPhone OS 14_8 like Mac OS X",
		},
		Browsers: []Browser{
			{"Mobile Safari/605.1.15", webKit605},
			{"FxiOS/105.0 Mobile", webKit605},
			{"DuckDuckGo/7.65.3", webKit605},
		},
	},
	{
		// mixes engines of unrelated systems on purpose, e.g. Kindle with Chrome
		Name: "Others",
		OSVersions: []string{
			"CrOS x86_64 15183.78.0",
			"BB10; Touch",
			"Linux; U; en-us; KFAUWI Build/KTU84M",
		},
		Browsers: []Browser{
			{"Chrome/105.0.5195.102", webKit537},
			{"Firefox/105.0", gecko},
			{"Safari/534.57.2", "AppleWebKit/534.57.2 (KHTML, like Gecko)"},
			{"Silk/3.50", webKit537},
		},
	},
}

var locales = []string{
	"en-US", "en-GB", "en-CA", "en-AU", "en-IN",
	"fr-FR", "fr-CA", "fr-BE", "de-DE", "de-AT",
	"es-ES", "es-MX", "es-AR", "pt-BR", "pt-PT",
	"ru-RU", "ko-KR", "it-IT", "nl-NL", "sv-SE",
	"zh-CN", "zh-TW", "ja-JP",
}

// Categories returns a copy of every OS category in catalog order.
func Categories() []Category {
	cs := make([]Category, len(catalog))
	for i, c := range catalog {
		cs[i] = c.clone()
	}
	return cs
}

// CategoryNames returns the category names in catalog order.
func CategoryNames() []string {
	names := make([]string, len(catalog))
	for i, c := range catalog {
		names[i] = c.Name
	}
	return names
}

// Lookup finds a category by its exact name.
func Lookup(name string) (Category, bool) {
	for _, c := range catalog {
		if c.Name == name {
			return c.clone(), true
		}
	}
	return Category{}, false
}

// Locales returns a copy of the locale tags.
func Locales() []string {
	return append([]string(nil), locales...)
}

func (c Category) clone() Category {
	return Category{
		Name:       c.Name,
		OSVersions: append([]string(nil), c.OSVersions...),
		Browsers:   append([]Browser(nil), c.Browsers...),
	}
}
