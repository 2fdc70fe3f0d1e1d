package types

import "fmt"

// OutputQuantity names a quantity that BLOCK, TABLE and QUANTITY commands
// can write. The catalog follows the SWAN output variable tables.
type OutputQuantity string

var outputQuantities = map[OutputQuantity]bool{
	"depth": true, "botlev": true, "watlev": true, "vmag": true,
	"vdir": true, "vel": true, "hsign": true, "hswell": true,
	"dir": true, "pdir": true, "tdir": true, "tm01": true,
	"rtm01": true, "rtp": true, "tps": true, "per": true,
	"rper": true, "tmm10": true, "rtmm10": true, "tm02": true,
	"fspr": true, "dspr": true, "qp": true, "degrad": true,
	"qb": true, "transp": true, "force": true, "ubot": true,
	"urms": true, "tmbot": true, "wind": true, "fric": true,
	"rscale": true, "aice": true, "hice": true, "hss": true,
	"tss": true, "leak": true, "time": true, "tsec": true,
	"xp": true, "yp": true, "dist": true, "setup": true,
	"dhsign": true, "drtm01": true, "genera": true, "genwind": true,
	"redist": true, "redquad": true, "redtriad": true, "dissip": true,
	"disbot": true, "dissurf": true, "diswcap": true, "disswell": true,
	"disveg": true, "dismud": true, "disice": true, "disturb": true,
	"radstr": true, "propagat": true, "propxy": true, "proptheta": true,
	"propsigma": true, "nplants": true, "steepness": true, "bfi": true,
	"lwavp": true, "watveg": true, "zeta": true,
}

// Validate reports whether the quantity can be requested for output.
func (q OutputQuantity) Validate() error {
	if !outputQuantities[q] {
		return fmt.Errorf("unknown output quantity %q", string(q))
	}
	return nil
}

// ValidateQuantities validates a list of output quantities at once and
// requires at least one entry.
func ValidateQuantities(qs []OutputQuantity) error {
	if len(qs) == 0 {
		return fmt.Errorf("at least one output quantity is required")
	}
	for _, q := range qs {
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}
