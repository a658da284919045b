package builder

var pairStyles = []string{
	"atm",
	"awpmd/cut",
	"beck",
	"body/nparticle", "body/rounded/polygon", "body/rounded/polyhedron",
	"born", "born/coul/long", "born/coul/msm", "born/coul/wolf", "born/coul/dsf",
	"born/coul/dsf/cs", "born/coul/long/cs", "born/coul/wolf/cs",
	"buck/coul/long/cs", "coul/long/cs", "coul/wolf/cs", "lj/cut/coul/long/cs",
	"brownian", "brownian/poly",
	"buck", "buck/coul/cut", "buck/coul/long", "buck/coul/msm", "buck/long/coul/long",
	"lj/mdf", "buck/mdf", "lennard/mdf",
	"buck6d/coul/gauss/dsf", "buck6d/coul/gauss/long",
	"colloid",
	"cosine/squared",
	"coul/cut", "coul/debye", "coul/dsf", "coul/long", "coul/msm", "coul/streitz",
	"coul/wolf", "tip4p/cut", "tip4p/long",
	"coul/diel", "coul/shield",
	"lj/cut/soft", "lj/cut/coul/cut/soft", "lj/cut/coul/long/soft",
	"lj/cut/tip4p/long/soft", "lj/charmm/coul/long/soft",
	"lj/class2/soft", "lj/class2/coul/cut/soft", "lj/class2/coul/long/soft",
	"coul/cut/soft", "coul/long/soft", "tip4p/long/soft", "morse/soft",
	"dpd", "dpd/tstat", "dpd/fdt", "dpd/fdt/energy",
	"dsmc",
	"e3b",
	"edpd", "mdpd", "mdpd/rhosum", "tdpd",
	"eff/cut",
	"gauss", "gauss/cut",
	"gayberne",
	"gran/hooke", "gran/hooke/history", "gran/hertz/history",
	"granular",
	"hbond/dreiding/lj", "hbond/dreiding/morse",
	"line/lj",
	"lj/charmm/coul/charmm", "lj/charmm/coul/charmm/implicit", "lj/charmm/coul/long",
	"lj/charmm/coul/msm", "lj/charmmfsw/coul/charmmfsh", "lj/charmmfsw/coul/long",
	"lj/class2", "lj/class2/coul/cut", "lj/class2/coul/long",
	"lj/cubic",
	"lj/cut", "lj/cut/coul/cut", "lj/cut/coul/debye", "lj/cut/coul/dsf",
	"lj/cut/coul/long", "lj/cut/coul/msm", "lj/cut/coul/wolf",
	"lj/cut/tip4p/cut", "lj/cut/tip4p/long",
	"lj/cut/dipole/cut", "lj/sf/dipole/sf", "lj/cut/dipole/long", "lj/long/dipole/long",
	"thole", "lj/cut/thole/long",
	"lj/expand", "lj/expand/coul/long",
	"lj/gromacs", "lj/gromacs/coul/gromacs",
	"lj/long/coul/long", "lj/long/tip4p/long",
	"lj/sdk", "lj/sdk/coul/long", "lj/sdk/coul/msm",
	"lj/smooth", "lj/smooth/linear",
	"lj/switch3/coulgauss/long",
	"lj96/cut",
	"lubricate", "lubricate/poly", "lubricateU", "lubricateU/poly",
	"mie/cut",
	"mm3/switch3/coulgauss/long",
	"momb",
	"morse", "morse/smooth/linear",
	"nm/cut", "nm/cut/coul/cut", "nm/cut/coul/long",
	"oxdna/excv", "oxdna/stk", "oxdna/hbond", "oxdna/xstk", "oxdna/coaxstk",
	"oxdna2/excv", "oxdna2/stk", "oxdna2/hbond", "oxdna2/xstk", "oxdna2/coaxstk",
	"oxdna2/dh",
	"oxrna2/excv", "oxrna2/stk", "oxrna2/hbond", "oxrna2/xstk", "oxrna2/coaxstk",
	"oxrna2/dh",
	"peri/pmb", "peri/lps", "peri/ves", "peri/eps",
	"resquared",
	"sdpd/taitwater/isothermal",
	"smd/hertz", "smd/tlsph", "smd/tri_surface", "smd/ulsph",
	"soft",
	"sph/heatconduction", "sph/idealgas", "sph/lj", "sph/rhosum", "sph/taitwater",
	"sph/taitwater/morris",
	"spin/dipole/cut", "spin/dipole/long", "spin/dmi", "spin/exchange",
	"spin/magelec", "spin/neel",
	"srp",
	"tri/lj",
	"ufm",
	"yukawa", "yukawa/colloid",
	"zbl",
}

var paramFileStyles = []string{
	"adp",
	"agni",
	"airebo", "airebo/morse", "rebo", "drip",
	"bop",
	"comb", "comb3",
	"eam/alloy", "eam/cd", "eam/fs",
	"edip", "edip/multi",
	"extep",
	"gw", "gw/zbl",
	"ilp/graphene/hbn",
	"kolmogorov/crespi/full", "kolmogorov/crespi/z",
	"lcbop",
	"lebedeva/z",
	"meam/spline", "meam/sw/spline",
	"nb3b/harmonic",
	"polymorphic",
	"reax", "reax/c",
	"smtbq",
	"sw",
	"table", "table/rx",
	"tersoff", "tersoff/table", "tersoff/mod", "tersoff/mod/c", "tersoff/zbl",
	"vashishta", "vashishta/table",
}

var libParamStyles = []string{"meam", "meam/c", "snap"}
