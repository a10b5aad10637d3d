// Package expression implements the SpEL-flavored expression dialect used in
// payload mapping configurations: variable extraction, default context
// construction, and evaluation.
//
// Evaluation is a textual rewrite pipeline followed by a small expression
// grammar. The rewrite order is load-bearing; see Evaluate.
package expression

// Amount wraps a monetary value the way invoicing amounts appear in the
// simulation context JSON: {"value": 12.5}.
type Amount struct {
	Value float64 `json:"value"`
}

// ItemAmounts maps an amount kind (grossAmount, netAmount, amount) to its
// value for one invoicing item.
type ItemAmounts map[string]Amount

// Context is the evaluation context for a single payload generation run.
//
// Input holds the order input tree: the orderMetadata and operation maps plus
// any root-level fields. InvoicingItems maps item names to their amounts.
// Variables holds the standalone variables (currencyCodeValue and friends).
type Context struct {
	Input          map[string]any         `json:"input"`
	InvoicingItems map[string]ItemAmounts `json:"invoicingItems"`
	Variables      map[string]any         `json:"variables"`
}

// NewContext returns an empty context with all maps initialized.
func NewContext() *Context {
	return &Context{
		Input:          map[string]any{},
		InvoicingItems: map[string]ItemAmounts{},
		Variables:      map[string]any{},
	}
}

func (c *Context) orderMetadata() map[string]any {
	if c == nil || c.Input == nil {
		return nil
	}
	m, _ := c.Input["orderMetadata"].(map[string]any)
	return m
}

func (c *Context) operation() map[string]any {
	if c == nil || c.Input == nil {
		return nil
	}
	m, _ := c.Input["operation"].(map[string]any)
	return m
}

func (c *Context) inputField(name string) any {
	if c == nil || c.Input == nil {
		return nil
	}
	return c.Input[name]
}

func (c *Context) variable(name string) any {
	if c == nil || c.Variables == nil {
		return nil
	}
	return c.Variables[name]
}

// itemValue resolves invoicingItems[item][prop].value, reporting whether the
// full path exists.
func (c *Context) itemValue(item, prop string) (float64, bool) {
	if c == nil || c.InvoicingItems == nil {
		return 0, false
	}
	amounts, ok := c.InvoicingItems[item]
	if !ok {
		return 0, false
	}
	a, ok := amounts[prop]
	if !ok {
		return 0, false
	}
	return a.Value, true
}
