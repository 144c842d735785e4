package cli

import (
	"strconv"

	"github.com/spf13/pflag"
)

// negatedBool is the --no-<name> half of a boolean flag pair.
type negatedBool struct{ target *bool }

func (n negatedBool) String() string {
	if n.target == nil {
		return "false"
	}
	return strconv.FormatBool(!*n.target)
}

func (n negatedBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*n.target = !v
	return nil
}

func (n negatedBool) Type() string { return "bool" }

// boolPair registers --name and --no-name, both writing p.
func boolPair(fs *pflag.FlagSet, p *bool, name string, value bool, usage string) {
	fs.BoolVar(p, name, value, usage)
	f := fs.VarPF(negatedBool{target: p}, "no-"+name, "", "disable --"+name)
	f.NoOptDefVal = "true"
}
