package cart

import (
	"testing"

	"coursely/models"
)

func sampleCourse(id string, price float64) models.Course {
	return models.Course{ID: id, Title: "Course " + id, Price: price, Published: true}
}

func TestAddNewAndExistingLines(t *testing.T) {
	c := models.Cart{CartID: "c1"}
	c = Add(c, sampleCourse("a", 100), 1)
	c = Add(c, sampleCourse("b", 49.99), 2)
	c = Add(c, sampleCourse("a", 100), 1)

	if len(c.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(c.Items))
	}
	if c.Items[0].Quantity != 2 {
		t.Fatalf("duplicate add must bump quantity, got %d", c.Items[0].Quantity)
	}
}

func TestAddDoesNotMutateInput(t *testing.T) {
	orig := models.Cart{CartID: "c1"}
	orig = Add(orig, sampleCourse("a", 100), 1)

	next := Add(orig, sampleCourse("a", 100), 3)
	if orig.Items[0].Quantity != 1 {
		t.Fatalf("input cart mutated, quantity %d", orig.Items[0].Quantity)
	}
	if next.Items[0].Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", next.Items[0].Quantity)
	}
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	c := models.Cart{CartID: "c1"}
	c = Add(c, sampleCourse("a", 100), 1)
	c = Add(c, sampleCourse("b", 50), 1)

	c = SetQuantity(c, "a", 0)
	if len(c.Items) != 1 || c.Items[0].CourseID != "b" {
		t.Fatalf("zero quantity must remove the line, got %+v", c.Items)
	}
}

func TestApplyDiscountClamps(t *testing.T) {
	c := models.Cart{CartID: "c1"}

	c = ApplyDiscount(c, models.Discount{Code: "OVER", Percent: 150})
	if c.Discount.Percent != 100 {
		t.Fatalf("expected clamp to 100, got %v", c.Discount.Percent)
	}

	c = ApplyDiscount(c, models.Discount{Code: "NEG", Percent: -10})
	if c.Discount.Percent != 0 {
		t.Fatalf("expected clamp to 0, got %v", c.Discount.Percent)
	}

	c = ClearDiscount(c)
	if c.Discount != nil {
		t.Fatalf("expected discount cleared")
	}
}

func TestTotalsWithDiscountRounding(t *testing.T) {
	c := models.Cart{CartID: "c1"}
	c = Add(c, sampleCourse("a", 49.99), 2)
	c = Add(c, sampleCourse("b", 150), 1)
	c = ApplyDiscount(c, models.Discount{Code: "TEN", Percent: 10})

	totals := Totals(c)
	if totals.Subtotal != 249.98 {
		t.Fatalf("expected subtotal 249.98, got %v", totals.Subtotal)
	}
	if totals.DiscountAmount != 25.00 {
		t.Fatalf("expected discount 25.00, got %v", totals.DiscountAmount)
	}
	if totals.Total != 224.98 {
		t.Fatalf("expected total 224.98, got %v", totals.Total)
	}
	if totals.ItemCount != 3 {
		t.Fatalf("expected 3 items, got %d", totals.ItemCount)
	}
}
