package catalog

import (
	"sort"
	"testing"
)

func TestInvoicingItemGroups(t *testing.T) {
	groups := InvoicingItemGroups()
	if len(groups) != 6 {
		t.Fatalf("got %d groups, want 6", len(groups))
	}

	total := 0
	for _, group := range groups {
		if group.Key == "" || group.Label == "" {
			t.Errorf("group with empty key or label: %+v", group)
		}
		if len(group.Items) == 0 {
			t.Errorf("group %s has no items", group.Key)
		}
		total += len(group.Items)
	}
	if total != 96 {
		t.Errorf("got %d invoicing items, want 96", total)
	}
}

func TestMoneyMovementGroups(t *testing.T) {
	groups := MoneyMovementGroups()
	if len(groups) != 7 {
		t.Fatalf("got %d groups, want 7", len(groups))
	}

	total := 0
	for _, group := range groups {
		if len(group.Items) == 0 {
			t.Errorf("group %s has no items", group.Key)
		}
		total += len(group.Items)
	}
	if total != 56 {
		t.Errorf("got %d money movements, want 56", total)
	}
}

func TestInvoicingItemNamesSorted(t *testing.T) {
	names := InvoicingItemNames()
	if len(names) != 96 {
		t.Fatalf("got %d names, want 96", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Error("names are not sorted")
	}
}

func TestMoneyMovementNamesSorted(t *testing.T) {
	names := MoneyMovementNames()
	if len(names) != 56 {
		t.Fatalf("got %d names, want 56", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Error("names are not sorted")
	}
}

func TestInvoicingItemByName(t *testing.T) {
	item, ok := InvoicingItemByName("ACTIVATION_FEE_TO_COURIER")
	if !ok {
		t.Fatal("ACTIVATION_FEE_TO_COURIER not found")
	}
	if item.Name != "ACTIVATION_FEE_TO_COURIER" {
		t.Errorf("got name %q", item.Name)
	}
	if item.Description == "" {
		t.Error("description should not be empty")
	}

	if _, ok := InvoicingItemByName("NOT_A_REAL_ITEM"); ok {
		t.Error("lookup of unknown item should miss")
	}
}

func TestMoneyMovementByName(t *testing.T) {
	movement, ok := MoneyMovementByName("PRODUCTS_TO_PARTNER")
	if !ok {
		t.Fatal("PRODUCTS_TO_PARTNER not found")
	}
	if movement.Name != "PRODUCTS_TO_PARTNER" {
		t.Errorf("got name %q", movement.Name)
	}

	if _, ok := MoneyMovementByName("NOT_A_REAL_MOVEMENT"); ok {
		t.Error("lookup of unknown movement should miss")
	}
}

// PRODUCTS_TO_PARTNER appears both as an invoicing item and a money
// movement; the two catalogs are looked up independently.
func TestCrossCatalogName(t *testing.T) {
	if _, ok := InvoicingItemByName("PRODUCTS_TO_PARTNER"); !ok {
		t.Error("PRODUCTS_TO_PARTNER missing from invoicing items")
	}
	if _, ok := MoneyMovementByName("PRODUCTS_TO_PARTNER"); !ok {
		t.Error("PRODUCTS_TO_PARTNER missing from money movements")
	}
	if _, ok := InvoicingItemByName("DELIVERY_FEE_BY_CUSTOMER"); !ok {
		t.Error("DELIVERY_FEE_BY_CUSTOMER missing from invoicing items")
	}
}
