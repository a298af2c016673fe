package config

// Config represents the complete sdkgen configuration.
// It can be loaded from .sdkgen/config.yml with environment variable overrides.
type Config struct {
	Input           InputConfig  `yaml:"input" mapstructure:"input"`
	Naming          NamingConfig `yaml:"naming" mapstructure:"naming"`
	Types           TypesConfig  `yaml:"types" mapstructure:"types"`
	EngineModules   []string     `yaml:"engine_modules" mapstructure:"engine_modules"`
	Categories      []Category   `yaml:"categories" mapstructure:"categories"`
	DefaultCategory string       `yaml:"default_category" mapstructure:"default_category"`
}

// InputConfig describes the shape of the dump directory.
type InputConfig struct {
	Extension        string `yaml:"extension" mapstructure:"extension"`                   // input file extension, e.g. ".hpp"
	StructFilePrefix string `yaml:"struct_file_prefix" mapstructure:"struct_file_prefix"` // file stem prefix of struct-only definition files
	StructRefPrefix  string `yaml:"struct_ref_prefix" mapstructure:"struct_ref_prefix"`   // name prefix of structs resolved from sibling files
}

// NamingConfig controls identifiers and file names in the generated output.
type NamingConfig struct {
	Namespace   string `yaml:"namespace" mapstructure:"namespace"`       // namespace wrapping every output file
	FilePrefix  string `yaml:"file_prefix" mapstructure:"file_prefix"`   // prefix for output file names (GameEnums.hpp, ...)
	Umbrella    string `yaml:"umbrella" mapstructure:"umbrella"`         // base name of the umbrella include file
	DigitPrefix string `yaml:"digit_prefix" mapstructure:"digit_prefix"` // letter prepended to identifiers starting with a digit
}

// TypesConfig drives the type converter.
type TypesConfig struct {
	Mappings     map[string]string `yaml:"mappings" mapstructure:"mappings"`           // engine type -> portable type
	Ignored      []string          `yaml:"ignored" mapstructure:"ignored"`             // types whose fields are dropped
	CorePrefixes []string          `yaml:"core_prefixes" mapstructure:"core_prefixes"` // engine-core prefixes passed through untouched
}

// Category maps a subject-matter bucket to the keywords that select it.
// Order matters: the first category with a keyword hit wins.
type Category struct {
	Name     string   `yaml:"name" mapstructure:"name"`
	Keywords []string `yaml:"keywords" mapstructure:"keywords"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Extension:        ".hpp",
			StructFilePrefix: "struct_",
			StructRefPrefix:  "Fstruct_",
		},
		Naming: NamingConfig{
			Namespace:   "game",
			FilePrefix:  "Game",
			Umbrella:    "GameIncludes",
			DigitPrefix: "C",
		},
		Types: TypesConfig{
			Mappings: map[string]string{
				"bool":         "bool",
				"float":        "float",
				"int8":         "int8_t",
				"int16":        "int16_t",
				"int32":        "int32_t",
				"int64":        "int64_t",
				"uint8":        "uint8_t",
				"uint16":       "uint16_t",
				"uint32":       "uint32_t",
				"uint64":       "uint64_t",
				"FString":      "RC::Unreal::FString",
				"FName":        "RC::Unreal::FName",
				"FText":        "RC::Unreal::FText",
				"FVector":      "RC::Unreal::FVector",
				"FRotator":     "RC::Unreal::FRotator",
				"FTransform":   "RC::Unreal::FTransform",
				"FLinearColor": "RC::Unreal::FLinearColor",
				"UStaticMesh*": "RC::Unreal::UStaticMesh*",
				"AActor*":      "RC::Unreal::AActor*",
				"UObject*":     "RC::Unreal::UObject*",
			},
			Ignored: []string{
				"FPointerToUberGraphFrame",
				"TextureFilter",
				"ETimelineDirection",
				"ECollisionChannel",
				"FConnectionCallbackProxyOnSuccess",
				"FCheckGeoTrackingAvailabilityAsyncTaskBlueprintProxyOnSuccess",
				"TSoftClassPtr",
				"TSoftObjectPtr",
				"FJSONParserAsyncObjectToStringOnSuccess",
				"FBox",
				"FVector4",
				"FGuid",
			},
			CorePrefixes: []string{"UObject", "AActor", "UActorComponent"},
		},
		EngineModules: []string{
			"Engine", "CoreUObject", "UMG", "Slate", "SlateCore",
			"InputCore", "ControlRig", "Niagara", "NavigationSystem",
			"AIModule", "GameplayTags", "PhysicsCore", "AnimGraphRuntime",
			"MovieScene", "LevelSequence", "GameplayTasks", "AudioMixer",
			"Paper2D", "CinematicCamera", "AssetRegistry", "AugmentedReality",
			"MRMesh", "GeometryCollectionEngine", "ChaosSolverEngine", "DatasmithContent",
			"DatasmithCore", "GeometryCollectionSimulationCore",
		},
		Categories: []Category{
			{Name: "Gameplay", Keywords: []string{"Character", "Player", "Game", "Save", "Inventory"}},
			{Name: "UI", Keywords: []string{"HUD", "Menu", "Widget"}},
			{Name: "Props", Keywords: []string{"Item", "Prop", "Container"}},
			{Name: "Systems", Keywords: []string{"Day", "Night", "Weather", "Power"}},
			{Name: "Audio", Keywords: []string{"Sound", "Music", "Voice"}},
			{Name: "Physics", Keywords: []string{"Physics", "Collision"}},
		},
		DefaultCategory: "Game",
	}
}
