// Package catalog holds the static reference data for invoicing items and
// money movements, extracted from the O2C documentation. The records are
// immutable and loaded once at process start.
package catalog

import "sort"

// InvoicingItem is one invoicing item reference record.
type InvoicingItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Details     string `json:"details"`
	MoneyFlow   string `json:"moneyFlow"`
	Taxation    string `json:"taxation"`
	AmountType  string `json:"amountType"`
}

// InvoicingItemGroup groups invoicing items by issuer and receiver.
type InvoicingItemGroup struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Items []InvoicingItem `json:"items"`
}

// MoneyMovement is one money movement reference record.
type MoneyMovement struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	TaxType     string `json:"taxType"`
	Source      string `json:"source"`
}

// MoneyMovementGroup groups money movements by payer and payee.
type MoneyMovementGroup struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Items []MoneyMovement `json:"items"`
}

// InvoicingItemGroups returns all invoicing item groups in documentation
// order.
func InvoicingItemGroups() []InvoicingItemGroup {
	return invoicingItemGroups
}

// MoneyMovementGroups returns all money movement groups in documentation
// order.
func MoneyMovementGroups() []MoneyMovementGroup {
	return moneyMovementGroups
}

// InvoicingItemNames returns every invoicing item name, sorted.
func InvoicingItemNames() []string {
	var names []string
	for _, group := range invoicingItemGroups {
		for _, item := range group.Items {
			names = append(names, item.Name)
		}
	}
	sort.Strings(names)
	return names
}

// MoneyMovementNames returns every money movement name, sorted.
func MoneyMovementNames() []string {
	var names []string
	for _, group := range moneyMovementGroups {
		for _, item := range group.Items {
			names = append(names, item.Name)
		}
	}
	sort.Strings(names)
	return names
}

// InvoicingItemByName looks up an invoicing item across all groups.
func InvoicingItemByName(name string) (InvoicingItem, bool) {
	for _, group := range invoicingItemGroups {
		for _, item := range group.Items {
			if item.Name == name {
				return item, true
			}
		}
	}
	return InvoicingItem{}, false
}

// MoneyMovementByName looks up a money movement across all groups.
func MoneyMovementByName(name string) (MoneyMovement, bool) {
	for _, group := range moneyMovementGroups {
		for _, item := range group.Items {
			if item.Name == name {
				return item, true
			}
		}
	}
	return MoneyMovement{}, false
}
