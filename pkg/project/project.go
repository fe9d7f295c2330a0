package project

var (
	description = "Command line client for the Camunda Console management API."
	gitSHA      = "n/a"
	name        = "consolectl"
	source      = "https://github.com/camunda-community-hub/consolectl"
	version     = "1.2.0"
)

func Description() string {
	return description
}

func GitSHA() string {
	return gitSHA
}

func Name() string {
	return name
}

func Source() string {
	return source
}

func Version() string {
	return version
}
