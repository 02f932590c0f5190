package menu

import "strings"

// Item is one navigation entry available to the current user.
type Item struct {
	Label string
	Path  string
}

var public = []Item{
	{Label: "Products", Path: "/products"},
	{Label: "Training Videos", Path: "/training-videos"},
	{Label: "Disclaimers", Path: "/disclaimers"},
}

var management = []Item{
	{Label: "Manage Products", Path: "/dashboard/products"},
	{Label: "Manage Admins", Path: "/dashboard/admins"},
	{Label: "Manage Buyers", Path: "/dashboard/buyers"},
	{Label: "Manage Disclaimers", Path: "/dashboard/disclaimers"},
	{Label: "Manage Training Videos", Path: "/dashboard/training-videos"},
}

// Public returns the catalog entries shown to every visitor,
// logged in or not.
func Public() []Item {
	return append([]Item{}, public...)
}

// Compute returns the role-derived menu. Roles compare
// case-insensitively; an unknown or empty role gets nothing.
func Compute(role string) []Item {
	switch strings.ToLower(role) {
	case "superadmin", "admin":
		return append([]Item{}, management...)
	case "buyer":
		return []Item{{Label: "My Profile", Path: "/profile"}}
	}
	return nil
}
