package api

import (
	"bytes"
	"html/template"

	"github.com/ashabari/Majumdar-WorldRecipes/internal/i18n"
	"github.com/ashabari/Majumdar-WorldRecipes/internal/recipe"
)

// recipeTemplate renders a localized recipe as a read-only fragment.
// html/template escapes every field, so untrusted recipe text cannot
// inject markup.
var recipeTemplate = template.Must(template.New("recipe").Parse(`<article class="recipe" lang="{{.Lang}}">
  <h2>{{.Title}}</h2>
  <p>{{.Description}}</p>
  {{if .ImageURL}}<figure>
    <img src="{{.ImageURL}}" alt="{{.Title}}">
    {{if .ImageCredit}}<figcaption>{{if .ImageCreditURL}}<a href="{{.ImageCreditURL}}">{{.ImageCredit}}</a>{{else}}{{.ImageCredit}}{{end}}</figcaption>{{end}}
  </figure>{{end}}
  <h3>{{.IngredientsLabel}}</h3>
  <ul>{{range .Ingredients}}
    <li>{{.}}</li>{{end}}
  </ul>
  <h3>{{.StepsLabel}}</h3>
  <ol>{{range .Steps}}
    <li>{{.}}</li>{{end}}
  </ol>
</article>
`))

type recipePage struct {
	recipe.View
	IngredientsLabel string
	StepsLabel       string
}

func renderRecipeHTML(v recipe.View) ([]byte, error) {
	page := recipePage{
		View:             v,
		IngredientsLabel: i18n.T(v.Lang, "label.ingredients"),
		StepsLabel:       i18n.T(v.Lang, "label.steps"),
	}

	var buf bytes.Buffer
	if err := recipeTemplate.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
