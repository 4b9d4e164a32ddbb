package config

// MergeConfig merges source config into target, updating sources tracking.
// Only non-empty values from source are applied.
func MergeConfig(target, source *Config, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	set := func(key string, dst *string, val string) {
		if val == "" {
			return
		}
		*dst = val
		target.Sources[key] = sourceType
	}

	set("openTag", &target.OpenTag, source.OpenTag)
	set("closeTag", &target.CloseTag, source.CloseTag)
	set("errorTemplate", &target.ErrorTemplate, source.ErrorTemplate)
	set("emptyTemplate", &target.EmptyTemplate, source.EmptyTemplate)
	set("logLevel", &target.LogLevel, source.LogLevel)
	set("logFormat", &target.LogFormat, source.LogFormat)
	set("logFile", &target.LogFile, source.LogFile)
}
