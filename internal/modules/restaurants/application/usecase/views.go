package usecase

import "mesaPos/internal/modules/restaurants/domain"

// RestaurantSummaryView is the flat public projection: no menu, no roles.
type RestaurantSummaryView struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RestaurantCreateView is returned from creation and includes the initial
// approval status.
type RestaurantCreateView struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Status  string `json:"status"`
}

// RestaurantDetailView is the back-office projection including role grants.
type RestaurantDetailView struct {
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	Address   string            `json:"address"`
	Status    string            `json:"status"`
	UserRoles []domain.UserRole `json:"userRoles"`
}

func newSummaryView(r *domain.Restaurant) RestaurantSummaryView {
	return RestaurantSummaryView{ID: r.ID, Name: r.Name, Address: r.Address}
}
