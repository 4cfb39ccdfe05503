package configx

type provider struct {
	files             []string
	forcedValues      map[string]interface{}
	disableEnvLoading bool
}

type OptionModifier func(*provider)

func WithConfigFiles(files ...string) OptionModifier {
	return func(p *provider) {
		p.files = append(p.files, files...)
	}
}

func WithValue(key string, value interface{}) OptionModifier {
	return func(p *provider) {
		if p.forcedValues == nil {
			p.forcedValues = map[string]interface{}{}
		}
		p.forcedValues[key] = value
	}
}

func WithValues(values map[string]interface{}) OptionModifier {
	return func(p *provider) {
		for key, value := range values {
			WithValue(key, value)(p)
		}
	}
}

func DisableEnvLoading() OptionModifier {
	return func(p *provider) {
		p.disableEnvLoading = true
	}
}
