package upstream

import (
	"fmt"
	"strings"

	"github.com/barcart/barcart/internal/cocktails"
)

// rawDrink mirrors one upstream record. The upstream spreads ingredients and
// measures across fifteen numbered string columns and uses null for absent
// values, so everything decodes into a loose field map.
type rawDrink map[string]*string

func (r rawDrink) field(key string) string {
	if v := r[key]; v != nil {
		return strings.TrimSpace(*v)
	}
	return ""
}

// reshape converts the upstream column soup into a Drink. The numbered
// ingredient/measure columns are paired positionally and empty tails dropped;
// a measure without an ingredient is discarded with it.
func (r rawDrink) reshape() cocktails.Drink {
	d := cocktails.Drink{
		ID:           r.field("idDrink"),
		Name:         r.field("strDrink"),
		Category:     r.field("strCategory"),
		Thumbnail:    r.field("strDrinkThumb"),
		Instructions: r.field("strInstructions"),
		Glass:        r.field("strGlass"),
		Alcoholic:    r.field("strAlcoholic"),
		IBA:          r.field("strIBA"),
		VideoURL:     r.field("strVideo"),
	}

	for i := 1; i <= 15; i++ {
		name := r.field(fmt.Sprintf("strIngredient%d", i))
		if name == "" {
			continue
		}
		d.Ingredients = append(d.Ingredients, cocktails.Ingredient{
			Name:    name,
			Measure: r.field(fmt.Sprintf("strMeasure%d", i)),
		})
	}

	if tags := r.field("strTags"); tags != "" {
		for _, t := range strings.Split(tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				d.Tags = append(d.Tags, t)
			}
		}
	}

	return d
}
