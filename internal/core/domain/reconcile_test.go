package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pantry/internal/core/domain"
)

func TestAggregateChecklist(t *testing.T) {
	tests := []struct {
		name    string
		entries []domain.ChecklistEntry
		want    domain.ChecklistState
	}{
		{
			name:    "empty checklist is neither checked nor partial",
			entries: nil,
			want:    domain.ChecklistState{},
		},
		{
			name: "all checked",
			entries: []domain.ChecklistEntry{
				{Text: "milk", Checked: true},
				{Text: "eggs", Checked: true},
			},
			want: domain.ChecklistState{Checked: true},
		},
		{
			name: "some checked",
			entries: []domain.ChecklistEntry{
				{Text: "milk", Checked: true},
				{Text: "eggs"},
			},
			want: domain.ChecklistState{PartiallyChecked: true},
		},
		{
			name: "none checked",
			entries: []domain.ChecklistEntry{
				{Text: "milk"},
				{Text: "eggs"},
			},
			want: domain.ChecklistState{},
		},
		{
			name: "single checked entry",
			entries: []domain.ChecklistEntry{
				{Text: "milk", Checked: true},
			},
			want: domain.ChecklistState{Checked: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.AggregateChecklist(tt.entries))
		})
	}
}

func TestApplyChecklistState(t *testing.T) {
	t.Run("derives parent flags from children", func(t *testing.T) {
		item := domain.ListItem{
			IsChecklist: true,
			Checked:     true, // stale
			Checklist: []domain.ChecklistEntry{
				{Text: "a", Checked: true},
				{Text: "b"},
			},
		}
		domain.ApplyChecklistState(&item)
		assert.False(t, item.Checked)
		assert.True(t, item.PartiallyChecked)
	})

	t.Run("leaves plain items alone", func(t *testing.T) {
		item := domain.ListItem{Checked: true}
		domain.ApplyChecklistState(&item)
		assert.True(t, item.Checked)
		assert.False(t, item.PartiallyChecked)
	})
}

func TestGroupItemsByCategory(t *testing.T) {
	milk := domain.ListItem{Name: "milk", Category: "dairy"}
	bread := domain.ListItem{Name: "bread", Category: "bakery"}
	cheese := domain.ListItem{Name: "cheese", Category: "dairy"}
	batteries := domain.ListItem{Name: "batteries"}

	groups := domain.GroupItemsByCategory([]domain.ListItem{milk, bread, cheese, batteries})

	want := []domain.CategoryGroup{
		{CategoryID: "dairy", Items: []domain.ListItem{milk, cheese}},
		{CategoryID: "bakery", Items: []domain.ListItem{bread}},
		{CategoryID: "", Items: []domain.ListItem{batteries}},
	}
	if diff := cmp.Diff(want, groups); diff != "" {
		t.Errorf("unexpected grouping (-want +got):\n%s", diff)
	}

	assert.Empty(t, domain.GroupItemsByCategory(nil))
}

func TestMergeCategoryOrder(t *testing.T) {
	tests := []struct {
		name  string
		saved []string
		items []domain.ListItem
		want  []string
	}{
		{
			name:  "saved order wins for populated categories",
			saved: []string{"b", "a"},
			items: []domain.ListItem{{Category: "a"}, {Category: "b"}},
			want:  []string{"b", "a"},
		},
		{
			name:  "saved ids without items are dropped",
			saved: []string{"b", "a"},
			items: []domain.ListItem{{Category: "a"}, {Category: "c"}},
			want:  []string{"a", "c"},
		},
		{
			name:  "new categories append in encounter order",
			saved: []string{"a"},
			items: []domain.ListItem{{Category: "c"}, {Category: "a"}, {Category: "b"}},
			want:  []string{"a", "c", "b"},
		},
		{
			name:  "no saved order",
			saved: nil,
			items: []domain.ListItem{{Category: "x"}, {Category: "y"}},
			want:  []string{"x", "y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := domain.GroupItemsByCategory(tt.items)
			assert.Equal(t, tt.want, domain.MergeCategoryOrder(tt.saved, groups))
		})
	}
}

func TestFindDuplicates(t *testing.T) {
	items := []domain.ListItem{
		{Name: "Leche entera"},
		{Name: "Pan"},
		{Name: "leche"},
		{Name: "Leche desnatada"},
		{Name: "Leche de avena"},
	}

	t.Run("substring matches both directions", func(t *testing.T) {
		matches := domain.FindDuplicates("leche", items)
		require.Len(t, matches, 3) // capped
		assert.Equal(t, "Leche entera", matches[0].Name)
		assert.Equal(t, "leche", matches[1].Name)
	})

	t.Run("exact after normalization", func(t *testing.T) {
		matches := domain.FindDuplicates("  PAN ", items)
		require.Len(t, matches, 1)
		assert.Equal(t, "Pan", matches[0].Name)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, domain.FindDuplicates("arroz", items))
	})

	t.Run("blank candidate", func(t *testing.T) {
		assert.Empty(t, domain.FindDuplicates("   ", items))
	})
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "leche entera", domain.NormalizeName("  Leche Entera "))
	assert.Equal(t, "", domain.NormalizeName("   "))
}

func TestDefaultCategories(t *testing.T) {
	t.Run("shopping lists get the built-in set", func(t *testing.T) {
		cats := domain.DefaultCategories(domain.ListTypeShopping)
		require.NotEmpty(t, cats)

		// Mutating the returned slice must not leak into later calls.
		cats[0].Name = "mutated"
		fresh := domain.DefaultCategories(domain.ListTypeShopping)
		assert.NotEqual(t, "mutated", fresh[0].Name)
	})

	t.Run("other list types carry no categories", func(t *testing.T) {
		assert.Nil(t, domain.DefaultCategories(domain.ListTypeGeneric))
	})
}
