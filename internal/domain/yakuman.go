package domain

// Yakuman hands are tracked as named events only; nothing here computes
// them from tile state.
const (
	YakumanKokushi         = "kokushi"
	YakumanSuuankou        = "suuankou"
	YakumanDaisangen       = "daisangen"
	YakumanRyuuiisou       = "ryuuiisou"
	YakumanTsuuiisou       = "tsuuiisou"
	YakumanChinroutou      = "chinroutou"
	YakumanChuuren         = "chuuren"
	YakumanSuukantsu       = "suukantsu"
	YakumanTenhou          = "tenhou"
	YakumanChiihou         = "chiihou"
	YakumanKokushi13       = "kokushi_13"
	YakumanSuuankouTanki   = "suuankou_tanki"
	YakumanJunseiChuuren   = "junsei_chuuren"
	YakumanDaisuushii      = "daisuushii"
	YakumanShousuushii     = "shousuushii"
)

var YakumanList = []string{
	YakumanKokushi, YakumanSuuankou, YakumanDaisangen, YakumanRyuuiisou,
	YakumanTsuuiisou, YakumanChinroutou, YakumanChuuren, YakumanSuukantsu,
	YakumanTenhou, YakumanChiihou, YakumanKokushi13, YakumanSuuankouTanki,
	YakumanJunseiChuuren, YakumanDaisuushii, YakumanShousuushii,
}

// RareYakumans are the hands the crystal-tier trophy singles out.
var RareYakumans = map[string]bool{
	YakumanTenhou:        true,
	YakumanChiihou:       true,
	YakumanKokushi13:     true,
	YakumanSuuankouTanki: true,
	YakumanJunseiChuuren: true,
	YakumanDaisuushii:    true,
}

func IsYakuman(name string) bool {
	for _, y := range YakumanList {
		if y == name {
			return true
		}
	}
	return false
}

func allExcept(keep ...string) []string {
	kept := make(map[string]bool, len(keep))
	for _, k := range keep {
		kept[k] = true
	}
	var out []string
	for _, y := range YakumanList {
		if !kept[y] {
			out = append(out, y)
		}
	}
	return out
}

// YakumanIncompatibility lists, per yakuman, the yakumans that cannot be
// scored on the same winning hand. Used to validate yakuman events at
// game entry.
var YakumanIncompatibility = map[string][]string{
	YakumanTenhou:        allExcept(YakumanTenhou),
	YakumanChiihou:       allExcept(YakumanChiihou),
	YakumanKokushi:       allExcept(YakumanKokushi, YakumanKokushi13),
	YakumanKokushi13:     allExcept(YakumanKokushi, YakumanKokushi13),
	YakumanChuuren:       allExcept(YakumanChuuren, YakumanJunseiChuuren),
	YakumanJunseiChuuren: allExcept(YakumanChuuren, YakumanJunseiChuuren),
	YakumanSuukantsu:     allExcept(YakumanSuukantsu),
	YakumanSuuankou:      {YakumanKokushi, YakumanChuuren, YakumanSuukantsu, YakumanKokushi13, YakumanJunseiChuuren},
	YakumanSuuankouTanki: {YakumanKokushi, YakumanChuuren, YakumanSuukantsu, YakumanKokushi13, YakumanJunseiChuuren},
	YakumanDaisangen:     {YakumanKokushi, YakumanChuuren, YakumanSuukantsu, YakumanRyuuiisou, YakumanChinroutou, YakumanKokushi13, YakumanJunseiChuuren},
	YakumanTsuuiisou:     {YakumanKokushi, YakumanChuuren, YakumanRyuuiisou, YakumanChinroutou, YakumanKokushi13, YakumanJunseiChuuren},
	YakumanRyuuiisou:     {YakumanKokushi, YakumanChuuren, YakumanDaisangen, YakumanTsuuiisou, YakumanChinroutou, YakumanKokushi13, YakumanJunseiChuuren, YakumanDaisuushii, YakumanShousuushii},
	YakumanChinroutou:    {YakumanKokushi, YakumanChuuren, YakumanDaisangen, YakumanTsuuiisou, YakumanRyuuiisou, YakumanKokushi13, YakumanJunseiChuuren, YakumanDaisuushii, YakumanShousuushii},
	YakumanDaisuushii:    {YakumanKokushi, YakumanChuuren, YakumanShousuushii, YakumanKokushi13, YakumanJunseiChuuren},
	YakumanShousuushii:   {YakumanKokushi, YakumanChuuren, YakumanDaisuushii, YakumanKokushi13, YakumanJunseiChuuren},
}

// PenaltyReasons are the recorded-reason choices per penalty type.
var PenaltyReasons = map[PenaltyType][]string{
	PenaltyChombo:     {"false win declaration", "noten riichi", "other"},
	PenaltyAgariHouki: {"too many or too few tiles", "swap calling", "other"},
}
