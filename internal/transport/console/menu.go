package console

type action int

const (
	actionView action = iota
	actionAdd
	actionSell
	actionRestock
	actionRemove
	actionExit
)

type menuOption struct {
	label  string
	action action
}

var fullMainMenu = []menuOption{
	{"View all products", actionView},
	{"Add a product", actionAdd},
	{"Sell a product", actionSell},
	{"Restock a product", actionRestock},
	{"Remove a product", actionRemove},
	{"Exit", actionExit},
}

var noProductMainMenu = []menuOption{
	{"Add a product", actionAdd},
	{"Exit", actionExit},
}

// mainMenuOptions returns the options offered for an inventory holding productCount products.
func mainMenuOptions(productCount int) []menuOption {
	if productCount > 0 {
		return fullMainMenu
	}
	return noProductMainMenu
}

// validMenuSelection reports whether the 1-based selection picks one of options.
func validMenuSelection(options []menuOption, selection int) bool {
	return selection > 0 && selection <= len(options)
}
