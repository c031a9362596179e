package submission

// DiscType is the physical media format of a disc.
type DiscType string

const (
	DiscTypeCD                        DiscType = "CD"
	DiscTypeGDROM                     DiscType = "GD-ROM"
	DiscTypeDVD5                      DiscType = "DVD-5"
	DiscTypeDVD9                      DiscType = "DVD-9"
	DiscTypeHDDVDSL                   DiscType = "HD-DVD SL"
	DiscTypeHDDVDDL                   DiscType = "HD-DVD DL"
	DiscTypeBD25                      DiscType = "BD-25"
	DiscTypeBD33                      DiscType = "BD-33"
	DiscTypeBD50                      DiscType = "BD-50"
	DiscTypeBD66                      DiscType = "BD-66"
	DiscTypeBD100                     DiscType = "BD-100"
	DiscTypeBD128                     DiscType = "BD-128"
	DiscTypeUMDSL                     DiscType = "UMD SL"
	DiscTypeUMDDL                     DiscType = "UMD DL"
	DiscTypeNintendoGameCubeGameDisc  DiscType = "GameCube Game Disc"
	DiscTypeNintendoWiiOpticalDiscSL  DiscType = "Wii Optical Disc SL"
	DiscTypeNintendoWiiOpticalDiscDL  DiscType = "Wii Optical Disc DL"
	DiscTypeNintendoWiiUOpticalDiscSL DiscType = "Wii U Optical Disc SL"
)

// Family groups disc types that share layer semantics.
type Family int

const (
	FamilyOther Family = iota
	FamilyCD
	FamilyDVD
	FamilyHDDVD
	FamilyBluRay
	FamilyUMD
)

var discTypes = map[DiscType]Family{
	DiscTypeCD:                        FamilyCD,
	DiscTypeGDROM:                     FamilyCD,
	DiscTypeDVD5:                      FamilyDVD,
	DiscTypeDVD9:                      FamilyDVD,
	DiscTypeHDDVDSL:                   FamilyHDDVD,
	DiscTypeHDDVDDL:                   FamilyHDDVD,
	DiscTypeBD25:                      FamilyBluRay,
	DiscTypeBD33:                      FamilyBluRay,
	DiscTypeBD50:                      FamilyBluRay,
	DiscTypeBD66:                      FamilyBluRay,
	DiscTypeBD100:                     FamilyBluRay,
	DiscTypeBD128:                     FamilyBluRay,
	DiscTypeUMDSL:                     FamilyUMD,
	DiscTypeUMDDL:                     FamilyUMD,
	DiscTypeNintendoGameCubeGameDisc:  FamilyOther,
	DiscTypeNintendoWiiOpticalDiscSL:  FamilyOther,
	DiscTypeNintendoWiiOpticalDiscDL:  FamilyOther,
	DiscTypeNintendoWiiUOpticalDiscSL: FamilyOther,
}

// Family returns the layer family of d.
func (d DiscType) Family() Family { return discTypes[d] }

// Known reports whether d is in the disc type table.
func (d DiscType) Known() bool {
	_, ok := discTypes[d]
	return ok
}

// ParseDiscType resolves a display name, ignoring case.
func ParseDiscType(value string) (DiscType, bool) {
	for dt := range discTypes {
		if foldEqual(string(dt), value) {
			return dt, true
		}
	}
	return "", false
}
