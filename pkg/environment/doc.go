// Package environment names the environments an application runs in
// (development, staging, production) and normalizes the short aliases people
// put in configuration files.
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" -> Production
//	if env.IsProduction() {
//		// ...
//	}
//
// Unknown and empty values resolve to Development so that a missing variable
// never enables production behavior by accident.
package environment
