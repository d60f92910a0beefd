package config

// DefaultConfigDir is where config and the run database live.
const DefaultConfigDir = "~/.config/devgauge"

// DefaultDBName is the SQLite database filename.
const DefaultDBName = "devgauge.db"

// DefaultGitHubAPIURL is the public GitHub REST endpoint.
const DefaultGitHubAPIURL = "https://api.github.com"

// DefaultFetch bounds commit-history fetches.
var DefaultFetch = Fetch{
	Concurrency:    5,
	TimeoutSeconds: 60,
}

// DefaultOutput is the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 100,
}
