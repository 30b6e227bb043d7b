package chip

func def(v Variant, desc string, maxLevels int, combined bool, minOffset int, corners Corners, volt string, bins map[int]string) *Definition {
	d := &Definition{
		Variant:          v,
		Description:      desc,
		MaxTableLevels:   maxLevels,
		CombinedTable:    combined,
		MinLevelOffset:   minOffset,
		Strategy:         MultiBin,
		VoltTablePattern: volt,
		Levels:           corners,
		LevelCount:       corners.Count(),
		Bins:             bins,
	}
	if v.SingleBin() {
		d.Strategy = SingleBin
	}
	switch v {
	case LitoV1, LitoV2, Lagoon:
		d.CaTargetOffset = true
	}
	return d
}

func builtin() []*Definition {
	tuna := def(Tuna, "sd8sg4", 16, true, 1, FullExtendedCorners, "", map[int]string{
		0: "Speed Bin 0 (0x0)",
		1: "Speed Bin 1 (0xd8)",
		2: "Speed Bin 2 (0xf2)",
	})
	tuna.LiteralBins = true
	return []*Definition{
		def(Kona, "sdm865_series", 11, false, 2, StandardCorners, "gpu-opp-table_v2", map[int]string{
			0: "sdm865", 1: "sdm865p", 2: "sdm865m", 3: "sd870",
		}),
		def(KonaSingleBin, "sdm865_singlebin", 11, false, 2, StandardCorners, "gpu-opp-table_v2", map[int]string{
			0: "sdm865_singlebin",
		}),
		def(Msmnile, "sdm855_series", 11, false, 2, StandardCorners, "gpu_opp_table_v2", map[int]string{
			0: "sdm855", 1: "sdm855p",
		}),
		def(MsmnileSingleBin, "sdm855_singlebin", 11, false, 2, StandardCorners, "gpu_opp_table_v2", map[int]string{
			0: "sdm855_singlebin",
		}),
		def(Lahaina, "sdm888", 11, true, 1, ExtendedCorners, "", map[int]string{
			0: "sdm888", 3: "sdm888p",
		}),
		def(LahainaSingleBin, "sdm888_singlebin", 11, true, 1, StandardCorners, "", map[int]string{
			0: "sdm888_singlebin",
		}),
		def(LitoV1, "lito_v1_series", 11, false, 2, StandardCorners, "gpu-opp-table", map[int]string{
			1: "sd765g", 3: "sd765",
		}),
		def(LitoV2, "lito_v2_series", 11, false, 2, StandardCorners, "gpu-opp-table", map[int]string{
			1: "sd765g", 3: "sd765",
		}),
		def(Lagoon, "lagoon_series", 11, false, 2, StandardCorners, "gpu-opp-table", map[int]string{
			2: "sdm750g",
		}),
		def(Shima, "sd780g", 11, true, 1, StandardCorners, "", map[int]string{
			1: "sd780g",
		}),
		def(Yupik, "sd778g", 11, true, 1, StandardCorners, "", nil),
		def(WaipioSingleBin, "sd8g1_singlebin", 16, true, 1, StandardCorners, "", map[int]string{
			0: "sd8g1_singlebin",
		}),
		def(CapeSingleBin, "sd8g1p_singlebin", 16, true, 1, StandardCorners, "", map[int]string{
			0: "sd8g1p_singlebin",
		}),
		def(Kalama, "sd8g2", 16, true, 1, FullCorners, "", map[int]string{
			0: "sd8g2_for_galaxy", 1: "sd8g2",
		}),
		def(Diwali, "sd7g1", 16, true, 1, StandardCorners, "", map[int]string{
			3: "sd7g1",
		}),
		def(UkeeSingleBin, "sd7g2", 16, true, 1, StandardCorners, "", map[int]string{
			0: "sd7g2",
		}),
		def(Pineapple, "sd8g3", 16, true, 1, FullCorners, "", map[int]string{
			0: "sd8g3_for_galaxy", 1: "sd8g3",
		}),
		def(CliffsSingleBin, "sd8sg3", 16, true, 1, FullCorners, "", map[int]string{
			0: "sd8sg3",
		}),
		def(Cliffs7SingleBin, "sd7pg3", 16, true, 1, FullCorners, "", map[int]string{
			0: "sd7pg3",
		}),
		def(KalamaSGSingleBin, "sdg3xg2", 16, true, 1, FullCorners, "", map[int]string{
			0: "sdg3xg2",
		}),
		def(Sun, "sd8e", 16, true, 1, FullExtendedCorners, "", nil),
		def(Canoe, "sd8e_gen5", 16, true, 1, FullExtendedCorners, "", map[int]string{
			1: "sd8e_gen5",
		}),
		tuna,
		def(PineappleSG, "sdg3g3", 14, true, 1, FullCorners, "", map[int]string{
			0: "sdg3g3",
		}),
		def(KalamapQCSSingleBin, "sd_kalamap_qcs", 16, true, 1, FullCorners, "", nil),
		def(Unknown, "unknown", 11, false, 0, StandardCorners, "", nil),
	}
}
