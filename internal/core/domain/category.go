package domain

// Category groups items on a list. Default categories are process-wide
// constants for shopping lists; custom categories belong to a group and live
// in the remote store.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon,omitempty"`
	BgColor   string `json:"bgColor"`
	TextColor string `json:"textColor"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

var defaultShoppingCategories = []Category{
	{ID: "produce", Name: "Fruits & Vegetables", Icon: "🥦", BgColor: "#DCFCE7", TextColor: "#166534", IsDefault: true},
	{ID: "dairy", Name: "Dairy & Eggs", Icon: "🥛", BgColor: "#E0F2FE", TextColor: "#075985", IsDefault: true},
	{ID: "meat", Name: "Meat & Fish", Icon: "🥩", BgColor: "#FEE2E2", TextColor: "#991B1B", IsDefault: true},
	{ID: "bakery", Name: "Bakery", Icon: "🥖", BgColor: "#FEF3C7", TextColor: "#92400E", IsDefault: true},
	{ID: "pantry", Name: "Pantry", Icon: "🥫", BgColor: "#FFEDD5", TextColor: "#9A3412", IsDefault: true},
	{ID: "frozen", Name: "Frozen", Icon: "🧊", BgColor: "#DBEAFE", TextColor: "#1E40AF", IsDefault: true},
	{ID: "drinks", Name: "Drinks", Icon: "🧃", BgColor: "#EDE9FE", TextColor: "#5B21B6", IsDefault: true},
	{ID: "household", Name: "Household", Icon: "🧻", BgColor: "#F3F4F6", TextColor: "#374151", IsDefault: true},
	{ID: "personal", Name: "Personal Care", Icon: "🧴", BgColor: "#FCE7F3", TextColor: "#9D174D", IsDefault: true},
	{ID: "other", Name: "Other", Icon: "🛒", BgColor: "#F1F5F9", TextColor: "#475569", IsDefault: true},
}

// DefaultCategories returns the built-in category set for the given list
// type. Generic lists have no built-in categories and get an empty slice.
// The returned slice is a copy; callers may mutate it freely.
func DefaultCategories(listType ListType) []Category {
	if listType != ListTypeShopping {
		return nil
	}
	out := make([]Category, len(defaultShoppingCategories))
	copy(out, defaultShoppingCategories)
	return out
}
