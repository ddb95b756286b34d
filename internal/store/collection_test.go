package store

import (
	"errors"
	"testing"

	"voyago/internal/models/db_models"
	"voyago/pkg/utils"
)

func newBookingCollection() *Collection[db_models.Booking] {
	return NewCollection(func(b db_models.Booking) string { return b.ID })
}

func TestCollection_AddPrependsAndGrowsByOne(t *testing.T) {
	c := newBookingCollection()

	if err := c.Add(db_models.Booking{ID: "BK-1", Status: db_models.BookingPending}); err != nil {
		t.Fatalf("Add(BK-1) = %v", err)
	}
	if err := c.Add(db_models.Booking{ID: "BK-2", Status: db_models.BookingPending}); err != nil {
		t.Fatalf("Add(BK-2) = %v", err)
	}

	got := c.List()
	if len(got) != 2 {
		t.Fatalf("List() len = %d, want 2", len(got))
	}
	if got[0].ID != "BK-2" {
		t.Errorf("List()[0].ID = %q, want newest-first BK-2", got[0].ID)
	}
}

func TestCollection_AddRejectsDuplicateID(t *testing.T) {
	c := newBookingCollection()

	if err := c.Add(db_models.Booking{ID: "BK-1"}); err != nil {
		t.Fatalf("first Add = %v", err)
	}
	err := c.Add(db_models.Booking{ID: "BK-1"})
	if !errors.Is(err, utils.ErrDuplicateID) {
		t.Fatalf("second Add = %v, want ErrDuplicateID", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d after rejected add, want 1", c.Len())
	}
}

func TestCollection_UpdateReplacesWithoutDuplicating(t *testing.T) {
	c := newBookingCollection()
	_ = c.Add(db_models.Booking{ID: "BK-1", TotalAmount: 100})
	_ = c.Add(db_models.Booking{ID: "BK-2", TotalAmount: 200})

	if err := c.Update(db_models.Booking{ID: "BK-1", TotalAmount: 150}); err != nil {
		t.Fatalf("Update = %v", err)
	}

	got := c.List()
	if len(got) != 2 {
		t.Fatalf("List() len = %d, want 2", len(got))
	}
	updated, err := c.Get("BK-1")
	if err != nil {
		t.Fatalf("Get(BK-1) = %v", err)
	}
	if updated.TotalAmount != 150 {
		t.Errorf("TotalAmount = %v, want 150", updated.TotalAmount)
	}

	seen := map[string]int{}
	for _, b := range got {
		seen[b.ID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("id %q appears %d times", id, n)
		}
	}
}

func TestCollection_UpdateMissingIDLeavesCollectionUnchanged(t *testing.T) {
	c := newBookingCollection()
	_ = c.Add(db_models.Booking{ID: "BK-1", TotalAmount: 100})

	err := c.Update(db_models.Booking{ID: "BK-404", TotalAmount: 999})
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("Update(missing) = %v, want ErrNotFound", err)
	}

	got := c.List()
	if len(got) != 1 || got[0].TotalAmount != 100 {
		t.Errorf("collection changed by failed update: %+v", got)
	}
}

func TestCollection_Delete(t *testing.T) {
	c := NewCollection(func(p db_models.TourPackage) string { return p.ID })
	for _, id := range []string{"p1", "p2", "p3", "p4", "p5"} {
		_ = c.Add(db_models.TourPackage{ID: id, Name: id})
	}

	if err := c.Delete("p3"); err != nil {
		t.Fatalf("Delete(p3) = %v", err)
	}
	if c.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", c.Len())
	}
	if _, err := c.Get("p3"); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("Get(p3) after delete = %v, want ErrNotFound", err)
	}
}

func TestCollection_DeleteNonexistentLeavesFiveItems(t *testing.T) {
	c := NewCollection(func(p db_models.TourPackage) string { return p.ID })
	for _, id := range []string{"p1", "p2", "p3", "p4", "p5"} {
		_ = c.Add(db_models.TourPackage{ID: id, Name: "pkg " + id})
	}
	before := c.List()

	err := c.Delete("nonexistent-id")
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("Delete(nonexistent) = %v, want ErrNotFound", err)
	}

	after := c.List()
	if len(after) != 5 {
		t.Fatalf("len = %d, want 5", len(after))
	}
	for i := range before {
		if before[i].ID != after[i].ID || before[i].Name != after[i].Name {
			t.Errorf("item %d changed: %+v vs %+v", i, before[i], after[i])
		}
	}
}

func TestCollection_UpsertRestoresDeleted(t *testing.T) {
	c := newBookingCollection()
	_ = c.Add(db_models.Booking{ID: "BK-1", TotalAmount: 100})
	_ = c.Delete("BK-1")

	c.Upsert(db_models.Booking{ID: "BK-1", TotalAmount: 100})
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
}
