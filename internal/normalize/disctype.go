package normalize

import sub "discsub/internal/submission"

// DiscType reclassifies a disc type from its layerbreaks. Blu-ray discs move
// between 25/50/100/128 GB (33/66 GB for high-density media), DVD between
// DVD-5 and DVD-9, HD DVD and UMD between single and dual layer. The result
// depends only on the family and layerbreaks, so applying it twice is the
// same as applying it once. Other types pass through.
func DiscType(current sub.DiscType, layerbreak, layerbreak2, layerbreak3 int64) sub.DiscType {
	switch current.Family() {
	case sub.FamilyBluRay:
		switch {
		case layerbreak3 != 0:
			return sub.DiscTypeBD128
		case layerbreak2 != 0:
			return sub.DiscTypeBD100
		case layerbreak != 0:
			if highDensity(current) {
				return sub.DiscTypeBD66
			}
			return sub.DiscTypeBD50
		default:
			if highDensity(current) {
				return sub.DiscTypeBD33
			}
			return sub.DiscTypeBD25
		}
	case sub.FamilyDVD:
		return pick(layerbreak, sub.DiscTypeDVD5, sub.DiscTypeDVD9)
	case sub.FamilyHDDVD:
		return pick(layerbreak, sub.DiscTypeHDDVDSL, sub.DiscTypeHDDVDDL)
	case sub.FamilyUMD:
		return pick(layerbreak, sub.DiscTypeUMDSL, sub.DiscTypeUMDDL)
	default:
		return current
	}
}

func highDensity(dt sub.DiscType) bool {
	return dt == sub.DiscTypeBD33 || dt == sub.DiscTypeBD66
}

func pick(layerbreak int64, single, dual sub.DiscType) sub.DiscType {
	if layerbreak != 0 {
		return dual
	}
	return single
}

// Record applies DiscType to rec's media and, when titles is set, Title to
// its title.
func Record(rec *sub.Record, titles bool) {
	if rec == nil {
		return
	}
	sizes := rec.SizeAndChecksums
	info := &rec.CommonDiscInfo
	info.Media = DiscType(info.Media, sizes.Layerbreak, sizes.Layerbreak2, sizes.Layerbreak3)
	if titles && info.Title != "" {
		info.Title = Title(info.Title, info.Languages)
	}
}
