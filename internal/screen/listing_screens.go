package screen

import (
	"fmt"
	"strconv"

	"github.com/SoyOusa/localcommunitymarketplace/internal/database/models"
	"github.com/SoyOusa/localcommunitymarketplace/internal/database/repository"
	"github.com/SoyOusa/localcommunitymarketplace/internal/database/service"
)

func (c *Controller) postListingView(v *View) {
	v.Title = "Post a New Listing"
	v.Fields = []Field{
		c.field("title", "Title"),
		c.field("description", "Description"),
		c.field("price", "Price"),
		c.field("category", "Category"),
		c.field("image", "Image file (optional)"),
	}
	v.Actions = []Action{
		{ID: ActSubmitListing, Label: "Post Listing", Submit: true},
		{ID: ActDashboard, Label: "Back to Dashboard"},
	}
}

func (c *Controller) submitListing() error {
	uid, err := c.userID()
	if err != nil {
		return err
	}

	_, err = c.svc.Listings.Post(uid, service.ListingInput{
		Title:       c.form["title"],
		Description: c.form["description"],
		Price:       c.form["price"],
		Category:    c.form["category"],
		ImagePath:   c.form["image"],
	})
	if err != nil {
		return err
	}

	if err := c.Navigate(Dashboard); err != nil {
		return err
	}
	c.notice = "Listing posted successfully!"
	return nil
}

func (c *Controller) browseView(v *View) error {
	v.Title = "Marketplace Listings"
	v.Empty = "No listings available."

	sortKey := c.session.Sort()
	page, err := c.svc.Listings.Browse(sortKey, c.session.Page())
	if err != nil {
		return err
	}

	pages := (page.Total + service.PageSize - 1) / service.PageSize
	if pages == 0 {
		pages = 1
	}
	v.Status = fmt.Sprintf("Page %d of %d, sorted by %s", page.Page+1, pages, sortKey)

	for _, l := range page.Listings {
		v.Items = append(v.Items, c.listingItem(l))
	}

	v.Actions = []Action{
		{ID: ActPreviousPage, Label: "Previous"},
		{ID: ActNextPage, Label: "Next"},
	}
	for _, key := range repository.SortKeys() {
		if key == sortKey {
			continue
		}
		v.Actions = append(v.Actions, Action{
			ID:    ActSort + ":" + key.String(),
			Label: "Sort by " + key.String(),
		})
	}
	v.Actions = append(v.Actions, Action{ID: ActDashboard, Label: "Back to Dashboard"})
	return nil
}

func (c *Controller) listingItem(l models.Listing) Item {
	lines := []string{
		fmt.Sprintf("Title: %s | Price: $%s | Category: %s | Location: %s",
			l.Title, strconv.FormatFloat(l.Price, 'f', 2, 64), l.Category, l.Location),
		fmt.Sprintf("Seller: %s (%s)", l.Seller.Name, l.Seller.Email),
	}
	if l.Description != "" {
		lines = append(lines, l.Description)
	}
	if l.ImagePath != "" {
		if thumb, err := c.images.Load(l.ImagePath); err == nil {
			size := thumb.Size()
			lines = append(lines, fmt.Sprintf("[Image %dx%d]", size.X, size.Y))
		} else {
			lines = append(lines, msgImageNotAvailable)
		}
	}

	return Item{
		Lines: lines,
		Style: StyleCard,
		Actions: []Action{{
			ID:    fmt.Sprintf("%s:%d", ActMessageSeller, l.ID),
			Label: fmt.Sprintf("Message Seller (%s)", l.Title),
		}},
	}
}

func (c *Controller) nextPage() error {
	total, err := c.svc.Listings.Count()
	if err != nil {
		return err
	}
	if c.session.NextPage(total) {
		c.images.Release()
	}
	return nil
}

func (c *Controller) previousPage() error {
	if c.session.PreviousPage() {
		c.images.Release()
	}
	return nil
}

func (c *Controller) sortBy(name string) error {
	key, ok := repository.ParseSortKey(name)
	if !ok {
		return ErrUnknownAction
	}
	c.session.SetSort(key)
	c.images.Release()
	return nil
}

func (c *Controller) messageSeller(arg string) error {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return ErrUnknownAction
	}

	page, err := c.svc.Listings.Browse(c.session.Sort(), c.session.Page())
	if err != nil {
		return err
	}
	for _, l := range page.Listings {
		if uint64(l.ID) == id {
			return c.openCompose(l.Seller.Email, strconv.FormatUint(id, 10))
		}
	}
	return ErrUnknownAction
}
