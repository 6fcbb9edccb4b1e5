package ingredients

import (
	"strings"
	"unicode"
)

// descriptor and quantity words stripped from the front of ingredient names
// before matching. Unknown tokens pass through untouched.
var stopwords = map[string]struct{}{
	"a":        {},
	"an":       {},
	"some":     {},
	"of":       {},
	"fresh":    {},
	"dried":    {},
	"frozen":   {},
	"canned":   {},
	"chopped":  {},
	"diced":    {},
	"sliced":   {},
	"minced":   {},
	"grated":   {},
	"peeled":   {},
	"shredded": {},
	"large":    {},
	"small":    {},
	"medium":   {},
	"organic":  {},
	"ripe":     {},
	"whole":    {},
}

// plurals that the suffix rules would mangle.
var singularExceptions = map[string]string{
	"hummus":    "hummus",
	"couscous":  "couscous",
	"asparagus": "asparagus",
	"molasses":  "molasses",
	"leaves":    "leaf",
	"loaves":    "loaf",
}

// Normalize reduces a raw ingredient name to its matching form: lowercased,
// leading descriptor/quantity words removed, anything after a comma dropped,
// and the trailing word singularized. "2 large chopped Tomatoes, diced"
// becomes "tomato".
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	fields := strings.Fields(name)
	for len(fields) > 0 {
		if _, skip := stopwords[fields[0]]; skip || isNumeric(fields[0]) {
			fields = fields[1:]
			continue
		}
		break
	}
	name = strings.Join(fields, " ")

	if idx := strings.Index(name, ","); idx >= 0 {
		name = strings.TrimSpace(name[:idx])
	}

	fields = strings.Fields(name)
	if len(fields) > 0 {
		fields[len(fields)-1] = singularize(fields[len(fields)-1])
	}
	return strings.Join(fields, " ")
}

func singularize(word string) string {
	if s, ok := singularExceptions[word]; ok {
		return s
	}
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		// berries -> berry
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "oes") || strings.HasSuffix(word, "ches") ||
		strings.HasSuffix(word, "shes") || strings.HasSuffix(word, "sses") ||
		strings.HasSuffix(word, "xes") || strings.HasSuffix(word, "zes"):
		// tomatoes -> tomato, radishes -> radish
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ss") || strings.HasSuffix(word, "us"):
		return word
	case strings.HasSuffix(word, "s") && len(word) > 2:
		return word[:len(word)-1]
	}
	return word
}

func isNumeric(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsDigit(r) && r != '.' && r != '/' && r != '-' {
			return false
		}
	}
	return true
}
