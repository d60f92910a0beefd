package github

// User is the subset of the GitHub user record the analyzer consumes.
type User struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	HTMLURL     string `json:"html_url"`
}

// Repository is one repository snapshot as returned by the repository
// listing endpoint, in provider-given "recently updated" order.
type Repository struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Fork            bool   `json:"fork"`
	Language        string `json:"language"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	UpdatedAt       string `json:"updated_at"`
	HTMLURL         string `json:"html_url"`
}

// Commit is one commit record from a repository's recent history.
type Commit struct {
	Message    string `json:"message"`
	AuthorDate string `json:"author_date"`
}

// commitEnvelope mirrors the nested shape of the GitHub commits endpoint.
type commitEnvelope struct {
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}
