package menu

// Sample returns the built-in example menu. It doubles as the downloadable
// starter document for owners writing their first menu.json.
func Sample() *Menu {
	return &Menu{
		Name:     "Junk House",
		Address:  "Civil Lines, Gondia, MH",
		Phone:    "+91 98765 43210",
		Whatsapp: "919876543210",
		Maps:     "https://maps.google.com/?q=Junk+House+Gondia",
		Template: "two-col",
		Theme:    "classic",
		Categories: []Category{
			{Name: "Starters", Items: []Item{
				{Name: "Crispy Corn", Price: PriceOf(129), Desc: "Golden fried sweet corn"},
				{Name: "Veg Manchurian", Price: PriceOf(149)},
			}},
			{Name: "Main Course", Items: []Item{
				{Name: "Paneer Butter Masala", Price: PriceOf(199)},
				{Name: "Dal Tadka", Price: PriceOf(159)},
			}},
		},
	}
}
