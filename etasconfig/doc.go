// Package etasconfig loads a YAML configuration file into a
// CatalogParams plus run options (number of catalogs, PRNG seed,
// advisory windows, magnitude bins). Configuration is a nested struct
// with a DefaultConfig() constructor: Load starts from the defaults and
// lets a YAML file override only the fields it sets, via
// gopkg.in/yaml.v3.
package etasconfig
