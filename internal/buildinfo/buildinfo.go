package buildinfo

const Graffiti = " _  __ ____  ____  \n| |/ /|  _ \\|  _ \\ \n| ' / | | | | |_) |\n| . \\ | |_| |  _ < \n|_|\\_\\|____/|_| \\_\\\n\n"

var (
	BuildTag string = "v0.0.0"
	Name     string = "KDR"
	Time     string = ""
)

type buildinfo struct{}

func (buildinfo) Tag() string {
	return BuildTag
}

func (buildinfo) Name() string {
	return Name
}

func (buildinfo) Time() string {
	return Time
}

var Info buildinfo
