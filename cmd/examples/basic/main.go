package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/goliatone/go-translate/pkg/config"
	"github.com/goliatone/go-translate/pkg/node"
	"github.com/goliatone/go-translate/pkg/translator"
)

func main() {
	err := translator.Init(config.Config{
		Locale: "fr",
		Translations: map[string]map[string]any{
			"en": {
				"greeting":     "Hello, {{name}}!",
				"inbox":        map[string]any{"summary": "You have {{count}} messages as of {{when, date}}"},
				"dog":          "{{count}} dog",
				"dog_plural":   "{{count}} dogs",
				"order.total":  "Total: {{amount, currency}}",
				"order.header": "$t(greeting) Your receipt:",
			},
			"fr": {
				"greeting":    "Bonjour, {{name}} !",
				"inbox":       map[string]any{"summary": "Vous avez {{count}} messages au {{when, date}}"},
				"dog":         "{{count}} chien",
				"dog_plural":  "{{count}} chiens",
				"order.total": "Total : {{amount, currency}}",
			},
		},
	}, nil)
	if err != nil {
		log.Fatalf("init translator: %v", err)
	}

	payload := map[string]any{
		"title": translator.BuildTranslateNode("greeting", map[string]any{"name": "Ada"}),
		"summary": translator.BuildTranslateNode("inbox.summary", map[string]any{
			"count": 3,
			"when":  "2016-02-03",
		}),
		"items": []any{
			translator.BuildTranslateNode("dog", nil, node.WithQuantity(1)),
			translator.BuildTranslateNode("dog", nil, node.WithQuantity(4)),
		},
		"footer": translator.BuildTranslateNode("order.total", map[string]any{
			"amount": map[string]any{"value": 12.34, "currency": "EUR"},
		}),
	}

	result := translator.Translate(context.Background(), payload)
	encoded, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(encoded))

	english := translator.Translate(context.Background(), payload, translator.WithLocale("en"))
	encoded, _ = json.MarshalIndent(english, "", "  ")
	fmt.Println(string(encoded))
}
