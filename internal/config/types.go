package config

// Config is the top-level menuengine configuration, corresponding to
// .menuengine.yml.
type Config struct {
	// Template and Theme are the default selections for menus that do
	// not pick their own.
	Template string `yaml:"template" koanf:"template"`
	Theme    string `yaml:"theme" koanf:"theme"`

	// OutputDir receives exported viewer files.
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`

	// DraftDB is the path of the local draft database.
	DraftDB string `yaml:"draft_db" koanf:"draft_db"`

	// Plan selects the feature set (basic, standard, premium).
	Plan string `yaml:"plan" koanf:"plan"`

	// Plans maps extra plan names to feature definition files, overlaid
	// on the built-in plan table.
	Plans map[string]string `yaml:"plans,omitempty" koanf:"plans"`

	// Themes maps extra theme names to resource locations (file paths
	// or URLs), overlaid on the built-in themes.
	Themes map[string]string `yaml:"themes" koanf:"themes"`

	// Domain is the published base URL used for QR codes
	// (e.g. https://menu.example.com).
	Domain string `yaml:"domain" koanf:"domain"`

	// Port is the preview server port.
	Port int `yaml:"port" koanf:"port"`
}
