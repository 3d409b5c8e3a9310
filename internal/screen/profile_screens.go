package screen

import "fmt"

func (c *Controller) openProfile() error {
	uid, err := c.userID()
	if err != nil {
		return err
	}
	user, err := c.svc.Users.GetUser(uid)
	if err != nil {
		return err
	}

	if err := c.Navigate(Profile); err != nil {
		return err
	}
	c.form = Form{
		"name":     user.Name,
		"email":    user.Email,
		"location": user.Location,
	}
	return nil
}

func (c *Controller) profileView(v *View) error {
	v.Title = "Edit Profile"
	v.Fields = []Field{
		c.field("name", "Name"),
		c.field("email", "Email"),
		c.field("location", "Location"),
		c.field("picture", "Profile picture file (optional)"),
	}
	v.Actions = []Action{
		{ID: ActUpdateProfile, Label: "Update Profile", Submit: true},
		{ID: ActDashboard, Label: "Back to Dashboard"},
	}

	uid, err := c.userID()
	if err != nil {
		return err
	}
	user, err := c.svc.Users.GetUser(uid)
	if err != nil {
		return err
	}

	if path := user.PicturePath(); path != "" {
		line := msgImageNotAvailable
		if thumb, err := c.images.Load(path); err == nil {
			size := thumb.Size()
			line = fmt.Sprintf("[Profile picture %dx%d]", size.X, size.Y)
		}
		v.Items = []Item{{Lines: []string{line}, Style: StyleCard}}
	}
	return nil
}

// updateProfile commits the profile fields, then the optional picture as a
// separate write. A picture failure does not undo the profile update.
func (c *Controller) updateProfile() error {
	uid, err := c.userID()
	if err != nil {
		return err
	}

	if _, err := c.svc.Users.UpdateProfile(uid, c.form["name"], c.form["email"], c.form["location"]); err != nil {
		return err
	}

	picture := c.form["picture"]
	if err := c.Navigate(Dashboard); err != nil {
		return err
	}
	c.notice = "Your profile has been updated."

	if picture == "" {
		return nil
	}
	if err := c.svc.Users.UpdatePicture(uid, picture); err != nil {
		return err
	}
	c.notice = "Your profile has been updated. Profile picture updated!"
	return nil
}
