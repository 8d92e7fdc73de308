package cmd

const (
	RootCmdName  = "brewfind"
	RootCmdShort = "Search the Open Brewery DB by city"
	RootCmdLong  = `brewfind looks up breweries by city in the Open Brewery DB, charts how
they spread over postal codes and shows the details of each brewery.`

	ServeCmdName  = "serve"
	ServeCmdShort = "Serve the brewery search web application"
	ServeCmdLong  = `Start the HTTP server hosting the search page, the brewery detail pages
and the JSON API.`

	SearchCmdName  = "search"
	SearchCmdShort = "Search breweries of a city from the terminal"

	ConfigCmdName      = "config"
	ConfigCmdShort     = "Inspect brewfind configuration"
	ConfigShowCmdName  = "show"
	ConfigShowCmdShort = "Print the effective configuration as YAML"
)
