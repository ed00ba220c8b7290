package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/staykonnect/internal/common"
	"github.com/dmitrijs2005/staykonnect/internal/services"
)

// Browse lists every available property.
func (a *App) Browse(ctx context.Context) error {
	res := a.searchService.ListAvailable(ctx)
	renderProperties(a.out, res.Message, res.Properties)
	return nil
}

// Search prompts for the filters and prints the matches.
func (a *App) Search(ctx context.Context) error {
	var req services.SearchRequest
	var err error

	if req.City, err = getSimpleText(a.reader, "City (empty for all: "+strings.Join(a.searchService.ListCities(ctx), ", ")+")", a.out); err != nil {
		return err
	}
	if req.PriceMin, err = getSimpleText(a.reader, "Minimum price (empty for none)", a.out); err != nil {
		return err
	}
	if req.PriceMax, err = getSimpleText(a.reader, "Maximum price (empty for none)", a.out); err != nil {
		return err
	}
	if req.Amenities, err = getList(a.reader, "Required amenities", a.out); err != nil {
		return err
	}
	return a.runSearch(ctx, req)
}

func (a *App) runSearch(ctx context.Context, req services.SearchRequest) error {
	res, err := a.searchService.Search(ctx, req)
	if err != nil {
		a.log.Debug(ctx, "search rejected", "field", common.FieldOf(err), "error", err)
		return err
	}
	a.log.Debug(ctx, "search", "city", req.City, "min", req.PriceMin, "max", req.PriceMax,
		"amenities", req.Amenities, "matches", len(res.Properties))
	renderProperties(a.out, res.Message, res.Properties)
	return nil
}

func (a *App) Cities(ctx context.Context) error {
	renderNames(a.out, "Cities", a.searchService.ListCities(ctx))
	return nil
}

func (a *App) Amenities(ctx context.Context) error {
	renderNames(a.out, "Amenities", a.searchService.ListAmenities(ctx))
	return nil
}

// Show prints one property; id may be a unique prefix.
func (a *App) Show(ctx context.Context, id string) error {
	p, err := a.searchService.FindProperty(ctx, id)
	if err != nil {
		return err
	}
	renderProperty(a.out, p)
	return nil
}

// topN parses an optional count argument, falling back to the configured
// default.
func (a *App) topN(raw string) (int, error) {
	if raw == "" {
		return a.config.TopN, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, common.NewValidationError("n", "n must be a positive whole number")
	}
	return n, nil
}

func (a *App) Cheapest(ctx context.Context, raw string) error {
	n, err := a.topN(raw)
	if err != nil {
		return err
	}
	renderProperties(a.out, fmt.Sprintf("Top %d cheapest", n), a.listingService.Cheapest(ctx, n))
	return nil
}

func (a *App) Priciest(ctx context.Context, raw string) error {
	n, err := a.topN(raw)
	if err != nil {
		return err
	}
	renderProperties(a.out, fmt.Sprintf("Top %d most expensive", n), a.listingService.MostExpensive(ctx, n))
	return nil
}

func (a *App) Range(ctx context.Context, min, max string) error {
	ps, err := a.listingService.PriceRange(ctx, min, max)
	if err != nil {
		return err
	}
	renderProperties(a.out, fmt.Sprintf("Between $%s and $%s: %d found", min, max, len(ps)), ps)
	return nil
}

func (a *App) Sorted(ctx context.Context, order string) error {
	switch strings.ToLower(order) {
	case "", "asc":
		renderProperties(a.out, "Ascending by price", a.listingService.SortedByPrice(ctx, true))
	case "desc":
		renderProperties(a.out, "Descending by price", a.listingService.SortedByPrice(ctx, false))
	default:
		return common.NewValidationError("order", "order must be asc or desc")
	}
	return nil
}

// Mine lists the properties owned by the signed-in user.
func (a *App) Mine(ctx context.Context) error {
	u, ok := a.authService.Current(ctx)
	if !ok {
		return common.ErrUnauthorized
	}
	res := a.searchService.ListByOwner(ctx, u.ID)
	renderProperties(a.out, res.Message, res.Properties)
	return nil
}

// Publish prompts for a listing form and publishes it.
func (a *App) Publish(ctx context.Context) error {
	var req services.PublishRequest
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Title", &req.Title},
		{"City", &req.City},
		{"Address", &req.Address},
		{"Property type (Apartamento, Casa, Habitación, ...)", &req.PropertyType},
		{"Price per night", &req.Price},
		{"Capacity (guests)", &req.Capacity},
		{"Bedrooms", &req.Bedrooms},
		{"Bathrooms", &req.Bathrooms},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	var err error
	if req.Description, err = getMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}
	if req.Amenities, err = getList(a.reader, "Amenities", a.out); err != nil {
		return err
	}

	res, err := a.listingService.Publish(ctx, req)
	if err != nil {
		return err
	}
	a.log.Info(ctx, "property published", "property_id", res.Property.ID, "owner_id", res.Property.OwnerID)
	fmt.Fprintln(a.out, res.Message)
	renderProperty(a.out, res.Property)
	return nil
}

// Availability turns a listing on or off.
func (a *App) Availability(ctx context.Context, id, value string) error {
	var available bool
	switch strings.ToLower(value) {
	case "on", "yes", "true":
		available = true
	case "off", "no", "false":
		available = false
	default:
		return common.NewValidationError("available", "availability must be on or off")
	}

	p, err := a.searchService.FindProperty(ctx, id)
	if err != nil {
		return err
	}
	p, err = a.listingService.SetAvailability(ctx, p.ID, available)
	if err != nil {
		return err
	}
	a.log.Info(ctx, "availability changed", "property_id", p.ID, "available", p.Available)
	fmt.Fprintf(a.out, "%s is now %s\n", p.Title, availabilityText(p.Available))
	return nil
}

// Stats prints catalog and user totals.
func (a *App) Stats(ctx context.Context) error {
	renderStats(a.out, a.statsService.Catalog(ctx), a.statsService.Users(ctx))
	return nil
}

// Demo prints the price-index showcase.
func (a *App) Demo(ctx context.Context) error {
	const rangeMin, rangeMax = 100000, 200000

	d := demoReport{TopN: a.config.TopN, RangeMin: rangeMin, RangeMax: rangeMax}
	d.Min, d.Max = a.listingService.PriceBounds(ctx)
	d.Cheapest = a.listingService.Cheapest(ctx, d.TopN)
	d.Priciest = a.listingService.MostExpensive(ctx, d.TopN)

	var err error
	d.InRange, err = a.listingService.PriceRange(ctx, strconv.Itoa(rangeMin), strconv.Itoa(rangeMax))
	if err != nil {
		return err
	}
	d.Ascending = a.listingService.SortedByPrice(ctx, true)
	d.Descending = a.listingService.SortedByPrice(ctx, false)

	renderDemo(a.out, d)
	return nil
}
