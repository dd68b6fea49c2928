package seed

// File is the YAML fixture layout. References between entries use natural
// keys: users by email, amenities by name, places by title.
type File struct {
	Users     []User    `yaml:"users"`
	Amenities []Amenity `yaml:"amenities"`
	Places    []Place   `yaml:"places"`
	Reviews   []Review  `yaml:"reviews"`
}

type User struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	IsAdmin   bool   `yaml:"is_admin"`
}

type Amenity struct {
	Name string `yaml:"name"`
}

type Place struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Price       float64  `yaml:"price"`
	Latitude    float64  `yaml:"latitude"`
	Longitude   float64  `yaml:"longitude"`
	Owner       string   `yaml:"owner"`
	Amenities   []string `yaml:"amenities"`
}

type Review struct {
	Place  string `yaml:"place"`
	User   string `yaml:"user"`
	Text   string `yaml:"text"`
	Rating int    `yaml:"rating"`
}
