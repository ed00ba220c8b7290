package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/staykonnect/internal/models"
	"github.com/dmitrijs2005/staykonnect/internal/services"
	"github.com/dmitrijs2005/staykonnect/internal/textx"
)

const shortIDLen = 8

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

func availabilityText(available bool) string {
	if available {
		return "available"
	}
	return "unavailable"
}

// renderProperties prints a heading followed by one numbered line per
// property.
func renderProperties(w io.Writer, heading string, ps []*models.Property) {
	fmt.Fprintln(w, heading)
	for i, p := range ps {
		fmt.Fprintf(w, "%d. [%s] %s - %s - $%s", i+1, shortID(p.ID), p.Title, p.City, textx.FormatPrice(p.PricePerNight))
		if !p.Available {
			fmt.Fprint(w, " (unavailable)")
		}
		fmt.Fprintln(w)
	}
}

func renderProperty(w io.Writer, p *models.Property) {
	fmt.Fprintf(w, "%s [%s]\n", p.Title, p.ID)
	fmt.Fprintf(w, "  Type:      %s\n", p.PropertyType)
	fmt.Fprintf(w, "  Location:  %s, %s\n", p.Address, p.City)
	fmt.Fprintf(w, "  Price:     $%s per night\n", textx.FormatPrice(p.PricePerNight))
	fmt.Fprintf(w, "  Guests:    %d (%d bedrooms, %d bathrooms)\n", p.Capacity, p.Bedrooms, p.Bathrooms)
	fmt.Fprintf(w, "  Amenities: %s\n", p.AmenitiesText())
	fmt.Fprintf(w, "  Status:    %s\n", availabilityText(p.Available))
	if p.Description != "" {
		fmt.Fprintln(w)
		for _, line := range strings.Split(p.Description, "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
}

func renderUser(w io.Writer, u *models.User) {
	fmt.Fprintf(w, "%s <%s>\n", u.DisplayName, u.Email)
	fmt.Fprintf(w, "  Role:       %s\n", u.Role)
	fmt.Fprintf(w, "  Phone:      %s\n", u.Phone)
	fmt.Fprintf(w, "  Registered: %s\n", u.RegisteredOn.Format("2006-01-02"))
}

func renderNames(w io.Writer, title string, names []string) {
	if len(names) == 0 {
		fmt.Fprintf(w, "%s: none\n", title)
		return
	}
	fmt.Fprintf(w, "%s (%d): %s\n", title, len(names), strings.Join(names, ", "))
}

func roleLabel(r models.Role) string {
	switch r {
	case models.RoleTraveler:
		return "Travelers"
	case models.RoleHost:
		return "Hosts"
	case models.RoleAdmin:
		return "Admins"
	default:
		return r.String()
	}
}

func renderStats(w io.Writer, c services.CatalogStats, u services.UserStats) {
	fmt.Fprintln(w, "Catalog")
	fmt.Fprintf(w, "  Properties: %d (%d available)\n", c.Total, c.Available)
	fmt.Fprintf(w, "  Cities:     %s\n", strings.Join(c.Cities, ", "))
	fmt.Fprintf(w, "  Average:    $%s\n", textx.FormatPrice(c.AveragePrice))
	fmt.Fprintf(w, "  Cheapest:   $%s\n", textx.FormatPrice(c.MinPrice))
	fmt.Fprintf(w, "  Priciest:   $%s\n", textx.FormatPrice(c.MaxPrice))
	fmt.Fprintln(w, "Users")
	fmt.Fprintf(w, "  Total:      %d\n", u.Total)
	for _, r := range models.Roles {
		fmt.Fprintf(w, "  %-11s %d\n", roleLabel(r)+":", u.ByRole[r])
	}
}

// demoReport is the data behind the price-index showcase.
type demoReport struct {
	TopN               int
	RangeMin, RangeMax float64
	Min, Max           float64
	Cheapest           []*models.Property
	Priciest           []*models.Property
	InRange            []*models.Property
	Ascending          []*models.Property
	Descending         []*models.Property
}

func renderDemo(w io.Writer, d demoReport) {
	fmt.Fprintln(w, "Price index")
	fmt.Fprintf(w, "  Lowest:  $%s\n", textx.FormatPrice(d.Min))
	fmt.Fprintf(w, "  Highest: $%s\n", textx.FormatPrice(d.Max))
	fmt.Fprintln(w)
	renderProperties(w, fmt.Sprintf("Top %d cheapest", d.TopN), d.Cheapest)
	fmt.Fprintln(w)
	renderProperties(w, fmt.Sprintf("Top %d most expensive", d.TopN), d.Priciest)
	fmt.Fprintln(w)
	renderProperties(w, fmt.Sprintf("Between $%s and $%s: %d found",
		textx.FormatPrice(d.RangeMin), textx.FormatPrice(d.RangeMax), len(d.InRange)), d.InRange)
	fmt.Fprintln(w)
	renderProperties(w, "Ascending by price", d.Ascending)
	fmt.Fprintln(w)
	renderProperties(w, "Descending by price", d.Descending)
}
