// Package prompt builds the system instruction sent with every advisory query.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	catalog "github.com/murkotick/storefront-service/internal/app/catalog/domain"
)

// MaxAnswerWords is the length limit the advisor is asked to respect.
const MaxAnswerWords = 150

const persona = `Ты — "Советник Легион Тигр", экспертный ИИ-ассистент магазина премиального тактического снаряжения "ЛЕГИОН_ТИГР".
Твой тон — профессиональный, лаконичный, военный и полезный. Ты общаешься на русском языке.
Ты ставишь во главу угла функциональность и надежность.
Используй следующий каталог товаров для ответов на вопросы пользователей:
%s

Если пользователь спрашивает о чем-то, чего нет в каталоге, дай общий тактический совет, но упомяни, что у нас этого пока нет.
Держи ответы короче %d слов.`

// ProductLine renders one product as advisor context:
// "<name> (<category>): <description>. Specs: <json specs>".
func ProductLine(p *catalog.Product) string {
	specs, err := json.Marshal(p.Specs())
	if err != nil {
		// map[string]string always marshals
		specs = []byte("{}")
	}
	return fmt.Sprintf("%s (%s): %s. Specs: %s", p.Name(), p.Category(), p.Description(), specs)
}

// SystemInstruction renders the persona with one context line per catalog product.
func SystemInstruction(c *catalog.Catalog) string {
	products := c.Products()
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, ProductLine(p))
	}
	return fmt.Sprintf(persona, strings.Join(lines, "\n"), MaxAnswerWords)
}
