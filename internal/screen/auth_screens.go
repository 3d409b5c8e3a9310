package screen

func (c *Controller) loginView(v *View) {
	v.Title = "Login"
	v.Fields = []Field{
		c.field("email", "Email"),
		{Key: "password", Label: "Password", Value: c.form["password"], Secret: true},
	}
	v.Actions = []Action{
		{ID: ActLogin, Label: "Login", Submit: true},
		{ID: ActGoSignup, Label: "Signup"},
	}
}

func (c *Controller) signupView(v *View) {
	v.Title = "Signup"
	v.Fields = []Field{
		c.field("name", "Name"),
		c.field("email", "Email"),
		{Key: "password", Label: "Password", Value: c.form["password"], Secret: true},
		c.field("location", "Location"),
	}
	v.Actions = []Action{
		{ID: ActSignup, Label: "Signup", Submit: true},
		{ID: ActBackToLogin, Label: "Back to Login"},
	}
}

func (c *Controller) dashboardView(v *View) {
	v.Title = "Welcome to the Marketplace!"
	v.Actions = []Action{
		{ID: ActPostListing, Label: "Post a Listing"},
		{ID: ActBrowse, Label: "Browse Listings"},
		{ID: ActProfile, Label: "My Profile"},
		{ID: ActMessages, Label: "Messages"},
		{ID: ActLogout, Label: "Logout"},
	}
}

func (c *Controller) login() error {
	user, err := c.svc.Auth.Login(c.form["email"], c.form["password"])
	if err != nil {
		return err
	}

	c.session.Login(user.ID)
	c.logger.Info("🔓 [Screen] Session started", "user_id", user.ID, "session_id", c.session.ID())
	return c.Navigate(Dashboard)
}

func (c *Controller) signup() error {
	_, err := c.svc.Auth.Register(c.form["name"], c.form["email"], c.form["password"], c.form["location"])
	if err != nil {
		return err
	}

	if err := c.Navigate(Login); err != nil {
		return err
	}
	c.notice = "Signup successful. You can now log in!"
	return nil
}

func (c *Controller) logout() error {
	c.logger.Info("🔒 [Screen] Session ended", "session_id", c.session.ID())
	c.session.Logout()
	if err := c.Navigate(Login); err != nil {
		return err
	}
	c.notice = "You have been logged out."
	return nil
}
