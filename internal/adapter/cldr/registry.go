// Package cldr implements domain.LocaleFormatter on top of the CLDR tables
// generated by github.com/go-playground/locales.
package cldr

import (
	"strings"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/af"
	"github.com/go-playground/locales/agq"
	"github.com/go-playground/locales/ak"
	"github.com/go-playground/locales/am"
	"github.com/go-playground/locales/ar"
	"github.com/go-playground/locales/ar_AE"
	"github.com/go-playground/locales/ar_EG"
	"github.com/go-playground/locales/ar_MA"
	"github.com/go-playground/locales/ar_SA"
	"github.com/go-playground/locales/as"
	"github.com/go-playground/locales/asa"
	"github.com/go-playground/locales/ast"
	"github.com/go-playground/locales/az"
	"github.com/go-playground/locales/bas"
	"github.com/go-playground/locales/be"
	"github.com/go-playground/locales/bem"
	"github.com/go-playground/locales/bez"
	"github.com/go-playground/locales/bg"
	"github.com/go-playground/locales/bg_BG"
	"github.com/go-playground/locales/bm"
	"github.com/go-playground/locales/bn"
	"github.com/go-playground/locales/bo"
	"github.com/go-playground/locales/br"
	"github.com/go-playground/locales/brx"
	"github.com/go-playground/locales/bs"
	"github.com/go-playground/locales/ca"
	"github.com/go-playground/locales/ccp"
	"github.com/go-playground/locales/ce"
	"github.com/go-playground/locales/ceb"
	"github.com/go-playground/locales/cgg"
	"github.com/go-playground/locales/chr"
	"github.com/go-playground/locales/ckb"
	"github.com/go-playground/locales/cs"
	"github.com/go-playground/locales/cu"
	"github.com/go-playground/locales/cy"
	"github.com/go-playground/locales/da"
	"github.com/go-playground/locales/dav"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/de_AT"
	"github.com/go-playground/locales/de_CH"
	"github.com/go-playground/locales/de_DE"
	"github.com/go-playground/locales/dje"
	"github.com/go-playground/locales/dsb"
	"github.com/go-playground/locales/dua"
	"github.com/go-playground/locales/dyo"
	"github.com/go-playground/locales/dz"
	"github.com/go-playground/locales/ebu"
	"github.com/go-playground/locales/ee"
	"github.com/go-playground/locales/el"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_AU"
	"github.com/go-playground/locales/en_CA"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_IE"
	"github.com/go-playground/locales/en_IN"
	"github.com/go-playground/locales/en_NZ"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/eo"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/es_419"
	"github.com/go-playground/locales/es_ES"
	"github.com/go-playground/locales/es_MX"
	"github.com/go-playground/locales/es_US"
	"github.com/go-playground/locales/et"
	"github.com/go-playground/locales/eu"
	"github.com/go-playground/locales/ewo"
	"github.com/go-playground/locales/fa"
	"github.com/go-playground/locales/ff"
	"github.com/go-playground/locales/fi"
	"github.com/go-playground/locales/fi_FI"
	"github.com/go-playground/locales/fil"
	"github.com/go-playground/locales/fo"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/fr_CA"
	"github.com/go-playground/locales/fr_CH"
	"github.com/go-playground/locales/fr_FR"
	"github.com/go-playground/locales/fur"
	"github.com/go-playground/locales/fy"
	"github.com/go-playground/locales/ga"
	"github.com/go-playground/locales/gd"
	"github.com/go-playground/locales/gl"
	"github.com/go-playground/locales/gsw"
	"github.com/go-playground/locales/gu"
	"github.com/go-playground/locales/guz"
	"github.com/go-playground/locales/gv"
	"github.com/go-playground/locales/ha"
	"github.com/go-playground/locales/haw"
	"github.com/go-playground/locales/he"
	"github.com/go-playground/locales/he_IL"
	"github.com/go-playground/locales/hi"
	"github.com/go-playground/locales/hi_IN"
	"github.com/go-playground/locales/hr"
	"github.com/go-playground/locales/hsb"
	"github.com/go-playground/locales/hu"
	"github.com/go-playground/locales/hy"
	"github.com/go-playground/locales/ia"
	"github.com/go-playground/locales/id"
	"github.com/go-playground/locales/ig"
	"github.com/go-playground/locales/ii"
	"github.com/go-playground/locales/is"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/it_IT"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/ja_JP"
	"github.com/go-playground/locales/jgo"
	"github.com/go-playground/locales/jmc"
	"github.com/go-playground/locales/jv"
	"github.com/go-playground/locales/ka"
	"github.com/go-playground/locales/kab"
	"github.com/go-playground/locales/kam"
	"github.com/go-playground/locales/kde"
	"github.com/go-playground/locales/kea"
	"github.com/go-playground/locales/khq"
	"github.com/go-playground/locales/ki"
	"github.com/go-playground/locales/kk"
	"github.com/go-playground/locales/kkj"
	"github.com/go-playground/locales/kl"
	"github.com/go-playground/locales/kln"
	"github.com/go-playground/locales/km"
	"github.com/go-playground/locales/kn"
	"github.com/go-playground/locales/ko"
	"github.com/go-playground/locales/ko_KR"
	"github.com/go-playground/locales/kok"
	"github.com/go-playground/locales/ks"
	"github.com/go-playground/locales/ksb"
	"github.com/go-playground/locales/ksf"
	"github.com/go-playground/locales/ksh"
	"github.com/go-playground/locales/ku"
	"github.com/go-playground/locales/kw"
	"github.com/go-playground/locales/ky"
	"github.com/go-playground/locales/lag"
	"github.com/go-playground/locales/lb"
	"github.com/go-playground/locales/lg"
	"github.com/go-playground/locales/lkt"
	"github.com/go-playground/locales/ln"
	"github.com/go-playground/locales/lo"
	"github.com/go-playground/locales/lrc"
	"github.com/go-playground/locales/lt"
	"github.com/go-playground/locales/lu"
	"github.com/go-playground/locales/luo"
	"github.com/go-playground/locales/luy"
	"github.com/go-playground/locales/lv"
	"github.com/go-playground/locales/mas"
	"github.com/go-playground/locales/mer"
	"github.com/go-playground/locales/mfe"
	"github.com/go-playground/locales/mg"
	"github.com/go-playground/locales/mgh"
	"github.com/go-playground/locales/mgo"
	"github.com/go-playground/locales/mi"
	"github.com/go-playground/locales/mk"
	"github.com/go-playground/locales/ml"
	"github.com/go-playground/locales/mn"
	"github.com/go-playground/locales/mr"
	"github.com/go-playground/locales/ms"
	"github.com/go-playground/locales/mt"
	"github.com/go-playground/locales/mua"
	"github.com/go-playground/locales/my"
	"github.com/go-playground/locales/mzn"
	"github.com/go-playground/locales/naq"
	"github.com/go-playground/locales/nb"
	"github.com/go-playground/locales/nd"
	"github.com/go-playground/locales/nds"
	"github.com/go-playground/locales/ne"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/nl_NL"
	"github.com/go-playground/locales/nmg"
	"github.com/go-playground/locales/nn"
	"github.com/go-playground/locales/nnh"
	"github.com/go-playground/locales/nus"
	"github.com/go-playground/locales/nyn"
	"github.com/go-playground/locales/om"
	"github.com/go-playground/locales/or"
	"github.com/go-playground/locales/os"
	"github.com/go-playground/locales/pa"
	"github.com/go-playground/locales/pl"
	"github.com/go-playground/locales/pl_PL"
	"github.com/go-playground/locales/prg"
	"github.com/go-playground/locales/ps"
	"github.com/go-playground/locales/pt"
	"github.com/go-playground/locales/pt_BR"
	"github.com/go-playground/locales/pt_PT"
	"github.com/go-playground/locales/qu"
	"github.com/go-playground/locales/rm"
	"github.com/go-playground/locales/rn"
	"github.com/go-playground/locales/ro"
	"github.com/go-playground/locales/rof"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/ru_RU"
	"github.com/go-playground/locales/rw"
	"github.com/go-playground/locales/rwk"
	"github.com/go-playground/locales/sah"
	"github.com/go-playground/locales/saq"
	"github.com/go-playground/locales/sbp"
	"github.com/go-playground/locales/sd"
	"github.com/go-playground/locales/se"
	"github.com/go-playground/locales/seh"
	"github.com/go-playground/locales/ses"
	"github.com/go-playground/locales/sg"
	"github.com/go-playground/locales/shi"
	"github.com/go-playground/locales/si"
	"github.com/go-playground/locales/sk"
	"github.com/go-playground/locales/sl"
	"github.com/go-playground/locales/smn"
	"github.com/go-playground/locales/sn"
	"github.com/go-playground/locales/so"
	"github.com/go-playground/locales/sq"
	"github.com/go-playground/locales/sr"
	"github.com/go-playground/locales/sv"
	"github.com/go-playground/locales/sv_SE"
	"github.com/go-playground/locales/sw"
	"github.com/go-playground/locales/ta"
	"github.com/go-playground/locales/te"
	"github.com/go-playground/locales/teo"
	"github.com/go-playground/locales/tg"
	"github.com/go-playground/locales/th"
	"github.com/go-playground/locales/ti"
	"github.com/go-playground/locales/tk"
	"github.com/go-playground/locales/to"
	"github.com/go-playground/locales/tr"
	"github.com/go-playground/locales/tr_TR"
	"github.com/go-playground/locales/tt"
	"github.com/go-playground/locales/twq"
	"github.com/go-playground/locales/tzm"
	"github.com/go-playground/locales/ug"
	"github.com/go-playground/locales/uk"
	"github.com/go-playground/locales/ur"
	"github.com/go-playground/locales/uz"
	"github.com/go-playground/locales/vai"
	"github.com/go-playground/locales/vi"
	"github.com/go-playground/locales/vo"
	"github.com/go-playground/locales/vun"
	"github.com/go-playground/locales/wae"
	"github.com/go-playground/locales/wo"
	"github.com/go-playground/locales/xh"
	"github.com/go-playground/locales/xog"
	"github.com/go-playground/locales/yav"
	"github.com/go-playground/locales/yi"
	"github.com/go-playground/locales/yo"
	"github.com/go-playground/locales/yue"
	"github.com/go-playground/locales/zgh"
	"github.com/go-playground/locales/zh"
	"github.com/go-playground/locales/zh_Hans"
	"github.com/go-playground/locales/zh_Hans_CN"
	"github.com/go-playground/locales/zh_Hant"
	"github.com/go-playground/locales/zh_Hant_HK"
	"github.com/go-playground/locales/zh_Hant_TW"
	"github.com/go-playground/locales/zu"
	"golang.org/x/text/language"
)

// constructors maps CLDR identifiers to translator constructors. Base
// languages come first so that the matcher prefers them for bare tags;
// regional tables follow where their time formats differ or are commonly
// requested by full tag.
var constructors = []struct {
	id  string
	new func() locales.Translator
}{
	{"af", af.New},
	{"agq", agq.New},
	{"ak", ak.New},
	{"am", am.New},
	{"ar", ar.New},
	{"as", as.New},
	{"asa", asa.New},
	{"ast", ast.New},
	{"az", az.New},
	{"bas", bas.New},
	{"be", be.New},
	{"bem", bem.New},
	{"bez", bez.New},
	{"bg", bg.New},
	{"bm", bm.New},
	{"bn", bn.New},
	{"bo", bo.New},
	{"br", br.New},
	{"brx", brx.New},
	{"bs", bs.New},
	{"ca", ca.New},
	{"ccp", ccp.New},
	{"ce", ce.New},
	{"ceb", ceb.New},
	{"cgg", cgg.New},
	{"chr", chr.New},
	{"ckb", ckb.New},
	{"cs", cs.New},
	{"cu", cu.New},
	{"cy", cy.New},
	{"da", da.New},
	{"dav", dav.New},
	{"de", de.New},
	{"dje", dje.New},
	{"dsb", dsb.New},
	{"dua", dua.New},
	{"dyo", dyo.New},
	{"dz", dz.New},
	{"ebu", ebu.New},
	{"ee", ee.New},
	{"el", el.New},
	{"en", en.New},
	{"eo", eo.New},
	{"es", es.New},
	{"et", et.New},
	{"eu", eu.New},
	{"ewo", ewo.New},
	{"fa", fa.New},
	{"ff", ff.New},
	{"fi", fi.New},
	{"fil", fil.New},
	{"fo", fo.New},
	{"fr", fr.New},
	{"fur", fur.New},
	{"fy", fy.New},
	{"ga", ga.New},
	{"gd", gd.New},
	{"gl", gl.New},
	{"gsw", gsw.New},
	{"gu", gu.New},
	{"guz", guz.New},
	{"gv", gv.New},
	{"ha", ha.New},
	{"haw", haw.New},
	{"he", he.New},
	{"hi", hi.New},
	{"hr", hr.New},
	{"hsb", hsb.New},
	{"hu", hu.New},
	{"hy", hy.New},
	{"ia", ia.New},
	{"id", id.New},
	{"ig", ig.New},
	{"ii", ii.New},
	{"is", is.New},
	{"it", it.New},
	{"ja", ja.New},
	{"jgo", jgo.New},
	{"jmc", jmc.New},
	{"jv", jv.New},
	{"ka", ka.New},
	{"kab", kab.New},
	{"kam", kam.New},
	{"kde", kde.New},
	{"kea", kea.New},
	{"khq", khq.New},
	{"ki", ki.New},
	{"kk", kk.New},
	{"kkj", kkj.New},
	{"kl", kl.New},
	{"kln", kln.New},
	{"km", km.New},
	{"kn", kn.New},
	{"ko", ko.New},
	{"kok", kok.New},
	{"ks", ks.New},
	{"ksb", ksb.New},
	{"ksf", ksf.New},
	{"ksh", ksh.New},
	{"ku", ku.New},
	{"kw", kw.New},
	{"ky", ky.New},
	{"lag", lag.New},
	{"lb", lb.New},
	{"lg", lg.New},
	{"lkt", lkt.New},
	{"ln", ln.New},
	{"lo", lo.New},
	{"lrc", lrc.New},
	{"lt", lt.New},
	{"lu", lu.New},
	{"luo", luo.New},
	{"luy", luy.New},
	{"lv", lv.New},
	{"mas", mas.New},
	{"mer", mer.New},
	{"mfe", mfe.New},
	{"mg", mg.New},
	{"mgh", mgh.New},
	{"mgo", mgo.New},
	{"mi", mi.New},
	{"mk", mk.New},
	{"ml", ml.New},
	{"mn", mn.New},
	{"mr", mr.New},
	{"ms", ms.New},
	{"mt", mt.New},
	{"mua", mua.New},
	{"my", my.New},
	{"mzn", mzn.New},
	{"naq", naq.New},
	{"nb", nb.New},
	{"nd", nd.New},
	{"nds", nds.New},
	{"ne", ne.New},
	{"nl", nl.New},
	{"nmg", nmg.New},
	{"nn", nn.New},
	{"nnh", nnh.New},
	{"nus", nus.New},
	{"nyn", nyn.New},
	{"om", om.New},
	{"or", or.New},
	{"os", os.New},
	{"pa", pa.New},
	{"pl", pl.New},
	{"prg", prg.New},
	{"ps", ps.New},
	{"pt", pt.New},
	{"qu", qu.New},
	{"rm", rm.New},
	{"rn", rn.New},
	{"ro", ro.New},
	{"rof", rof.New},
	{"ru", ru.New},
	{"rw", rw.New},
	{"rwk", rwk.New},
	{"sah", sah.New},
	{"saq", saq.New},
	{"sbp", sbp.New},
	{"sd", sd.New},
	{"se", se.New},
	{"seh", seh.New},
	{"ses", ses.New},
	{"sg", sg.New},
	{"shi", shi.New},
	{"si", si.New},
	{"sk", sk.New},
	{"sl", sl.New},
	{"smn", smn.New},
	{"sn", sn.New},
	{"so", so.New},
	{"sq", sq.New},
	{"sr", sr.New},
	{"sv", sv.New},
	{"sw", sw.New},
	{"ta", ta.New},
	{"te", te.New},
	{"teo", teo.New},
	{"tg", tg.New},
	{"th", th.New},
	{"ti", ti.New},
	{"tk", tk.New},
	{"to", to.New},
	{"tr", tr.New},
	{"tt", tt.New},
	{"twq", twq.New},
	{"tzm", tzm.New},
	{"ug", ug.New},
	{"uk", uk.New},
	{"ur", ur.New},
	{"uz", uz.New},
	{"vai", vai.New},
	{"vi", vi.New},
	{"vo", vo.New},
	{"vun", vun.New},
	{"wae", wae.New},
	{"wo", wo.New},
	{"xh", xh.New},
	{"xog", xog.New},
	{"yav", yav.New},
	{"yi", yi.New},
	{"yo", yo.New},
	{"yue", yue.New},
	{"zgh", zgh.New},
	{"zh", zh.New},
	{"zu", zu.New},

	{"en_US", en_US.New},
	{"en_GB", en_GB.New},
	{"en_AU", en_AU.New},
	{"en_CA", en_CA.New},
	{"en_IN", en_IN.New},
	{"en_IE", en_IE.New},
	{"en_NZ", en_NZ.New},
	{"de_DE", de_DE.New},
	{"de_AT", de_AT.New},
	{"de_CH", de_CH.New},
	{"fr_FR", fr_FR.New},
	{"fr_CA", fr_CA.New},
	{"fr_CH", fr_CH.New},
	{"es_ES", es_ES.New},
	{"es_MX", es_MX.New},
	{"es_419", es_419.New},
	{"es_US", es_US.New},
	{"it_IT", it_IT.New},
	{"pt_BR", pt_BR.New},
	{"pt_PT", pt_PT.New},
	{"nl_NL", nl_NL.New},
	{"ru_RU", ru_RU.New},
	{"bg_BG", bg_BG.New},
	{"ja_JP", ja_JP.New},
	{"ko_KR", ko_KR.New},
	{"zh_Hans", zh_Hans.New},
	{"zh_Hans_CN", zh_Hans_CN.New},
	{"zh_Hant", zh_Hant.New},
	{"zh_Hant_TW", zh_Hant_TW.New},
	{"zh_Hant_HK", zh_Hant_HK.New},
	{"ar_EG", ar_EG.New},
	{"ar_SA", ar_SA.New},
	{"ar_MA", ar_MA.New},
	{"ar_AE", ar_AE.New},
	{"sv_SE", sv_SE.New},
	{"fi_FI", fi_FI.New},
	{"pl_PL", pl_PL.New},
	{"he_IL", he_IL.New},
	{"hi_IN", hi_IN.New},
	{"tr_TR", tr_TR.New},
}

// table is a constructor whose identifier parsed as a language tag.
type table struct {
	tag language.Tag
	new func() locales.Translator
}

// tables returns every constructor with a parseable identifier, in
// constructors order.
func tables() []table {
	out := make([]table, 0, len(constructors))
	for _, c := range constructors {
		tag, err := language.Parse(strings.ReplaceAll(c.id, "_", "-"))
		if err != nil {
			continue
		}
		out = append(out, table{tag: tag, new: c.new})
	}
	return out
}

// SupportedLocales returns the locales the formatter can serve, in BCP-47
// form.
func SupportedLocales() []string {
	ts := tables()
	ids := make([]string, len(ts))
	for i, t := range ts {
		ids[i] = t.tag.String()
	}
	return ids
}
