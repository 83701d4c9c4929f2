// Package cart holds the shopping-cart state container. All operations are
// pure: they take a cart and return the next cart, never mutating shared
// state ambiently.
package cart

import (
	"math"

	"coursely/models"
)

// Add appends a course to the cart, or bumps its quantity if already present.
func Add(c models.Cart, course models.Course, quantity int) models.Cart {
	if quantity < 1 {
		quantity = 1
	}
	for i, item := range c.Items {
		if item.CourseID == course.ID {
			next := cloneItems(c)
			next.Items[i].Quantity += quantity
			return next
		}
	}
	next := cloneItems(c)
	next.Items = append(next.Items, models.CartItem{
		CourseID: course.ID,
		Title:    course.Title,
		Price:    course.Price,
		Quantity: quantity,
	})
	return next
}

// Remove drops a course line entirely.
func Remove(c models.Cart, courseID string) models.Cart {
	next := c
	next.Items = make([]models.CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.CourseID != courseID {
			next.Items = append(next.Items, item)
		}
	}
	return next
}

// SetQuantity sets a line's quantity; zero or less removes the line.
func SetQuantity(c models.Cart, courseID string, quantity int) models.Cart {
	if quantity <= 0 {
		return Remove(c, courseID)
	}
	next := cloneItems(c)
	for i, item := range next.Items {
		if item.CourseID == courseID {
			next.Items[i].Quantity = quantity
			break
		}
	}
	return next
}

// ApplyDiscount attaches a percentage discount to the cart. Percentages
// outside 0..100 are clamped.
func ApplyDiscount(c models.Cart, d models.Discount) models.Cart {
	if d.Percent < 0 {
		d.Percent = 0
	}
	if d.Percent > 100 {
		d.Percent = 100
	}
	next := c
	next.Discount = &d
	return next
}

// ClearDiscount removes any applied discount.
func ClearDiscount(c models.Cart) models.Cart {
	next := c
	next.Discount = nil
	return next
}

// Totals derives the cart's money figures. Amounts are rounded to cents.
func Totals(c models.Cart) models.CartTotals {
	var t models.CartTotals
	for _, item := range c.Items {
		t.Subtotal += item.Price * float64(item.Quantity)
		t.ItemCount += item.Quantity
	}
	t.Subtotal = roundCents(t.Subtotal)
	if c.Discount != nil {
		t.DiscountAmount = roundCents(t.Subtotal * c.Discount.Percent / 100)
	}
	t.Total = roundCents(t.Subtotal - t.DiscountAmount)
	return t
}

func cloneItems(c models.Cart) models.Cart {
	next := c
	next.Items = make([]models.CartItem, len(c.Items))
	copy(next.Items, c.Items)
	return next
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
