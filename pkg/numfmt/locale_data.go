package numfmt

import "golang.org/x/text/language"

// symbolAfterAmount lists base languages that write the currency after the
// amount, e.g. "12,50 €".
var symbolAfterAmount = map[string]bool{
	"de": true,
	"fr": true,
	"es": true,
	"it": true,
	"pt": true,
	"ru": true,
	"pl": true,
	"cs": true,
	"sk": true,
	"uk": true,
	"sv": true,
	"da": true,
	"fi": true,
	"nb": true,
	"no": true,
}

func currencyAfter(tag language.Tag) bool {
	base, _ := tag.Base()
	return symbolAfterAmount[base.String()]
}

// currencyNames holds English display names, singular then plural.
var currencyNames = map[string][2]string{
	"USD": {"US dollar", "US dollars"},
	"EUR": {"euro", "euros"},
	"GBP": {"British pound", "British pounds"},
	"JPY": {"Japanese yen", "Japanese yen"},
	"CHF": {"Swiss franc", "Swiss francs"},
	"CAD": {"Canadian dollar", "Canadian dollars"},
	"AUD": {"Australian dollar", "Australian dollars"},
	"CNY": {"Chinese yuan", "Chinese yuan"},
	"RUB": {"Russian ruble", "Russian rubles"},
	"PLN": {"Polish zloty", "Polish zlotys"},
	"UAH": {"Ukrainian hryvnia", "Ukrainian hryvnias"},
	"SEK": {"Swedish krona", "Swedish kronor"},
}
