package dadosbr

import (
	"fmt"
	"strings"
)

// Institution identifies an open-data publisher.
type Institution string

const (
	ANA   Institution = "ana"   // Agência Nacional de Águas, legacy XML service.
	ONS   Institution = "ons"   // Operador Nacional do Sistema Elétrico, CKAN catalog.
	ANEEL Institution = "aneel" // Agência Nacional de Energia Elétrica, CKAN catalog.
	CCEE  Institution = "ccee"  // Câmara de Comercialização de Energia Elétrica, CKAN catalog.
)

// Institutions lists every supported institution.
var Institutions = []Institution{ANA, ONS, ANEEL, CCEE}

var hosts = map[Institution]string{
	ANA:   "http://telemetriaws1.ana.gov.br/ServiceANA.asmx",
	ONS:   "https://dados.ons.org.br",
	ANEEL: "https://dadosabertos.aneel.gov.br",
	CCEE:  "https://dadosabertos.ccee.org.br",
}

// ParseInstitution parses an institution name, case-insensitive.
func ParseInstitution(name string) (Institution, error) {
	i := Institution(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := hosts[i]; !ok {
		return "", fmt.Errorf("%w: unknown institution %q, use 'ana', 'ons', 'aneel' or 'ccee'", ErrInvalidArgument, name)
	}
	return i, nil
}

// IsCatalog reports whether the institution publishes through a CKAN catalog.
func (i Institution) IsCatalog() bool { return i == ONS || i == ANEEL || i == CCEE }

func (i Institution) String() string { return string(i) }

// Host returns the base URL of an institution's API.
func Host(i Institution) (string, bool) {
	h, ok := hosts[i]
	return h, ok
}

// LookupHost resolves a raw institution name, case-insensitive. It reports false for
// unknown names.
func LookupHost(name string) (string, bool) {
	return Host(Institution(strings.ToLower(strings.TrimSpace(name))))
}
