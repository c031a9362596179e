package submission

// System identifies the platform a disc was produced for.
type System string

const (
	SystemSonyPlayStation       System = "psx"
	SystemSonyPlayStation2      System = "ps2"
	SystemSonyPlayStation3      System = "ps3"
	SystemSonyPlayStation4      System = "ps4"
	SystemSonyPlayStation5      System = "ps5"
	SystemSonyPSP               System = "psp"
	SystemMicrosoftXbox         System = "xbox"
	SystemMicrosoftXbox360      System = "xbox360"
	SystemMicrosoftXboxOne      System = "xboxone"
	SystemMicrosoftXboxSeriesXS System = "xboxsx"
	SystemNintendoGameCube      System = "gc"
	SystemNintendoWii           System = "wii"
	SystemNintendoWiiU          System = "wiiu"
	SystemSegaDreamcast         System = "dc"
	SystemSegaSaturn            System = "ss"
	SystemSegaMegaCD            System = "mcd"
	SystemNECPCEngineCD         System = "pce"
	SystemSNKNeoGeoCD           System = "ngcd"
	SystemPanasonic3DO          System = "3do"
	SystemPhilipsCDi            System = "cdi"
	SystemIBMPCCompatible       System = "pc"
	SystemAppleMacintosh        System = "mac"
	SystemAtariJaguarCD         System = "ajcd"
	SystemBandaiPlaydiaQIS      System = "qis"
	SystemAudioCD               System = "audio-cd"
	SystemDVDVideo              System = "dvd-video"
	SystemBDVideo               System = "bd-video"
	SystemHDDVDVideo            System = "hddvd-video"
)

// SystemInfo is the immutable metadata attached to a system.
type SystemInfo struct {
	Name string
	// ReversedRingcodes systems list the outer ring before the inner ring on
	// multi-layer discs.
	ReversedRingcodes bool
	// PlayStation systems report EDC and anti-modchip details.
	PlayStation bool
	// XGD systems carry Xbox Game Disc security sectors.
	XGD bool
}

var systems = map[System]SystemInfo{
	SystemSonyPlayStation:       {Name: "Sony PlayStation", PlayStation: true},
	SystemSonyPlayStation2:      {Name: "Sony PlayStation 2", ReversedRingcodes: true},
	SystemSonyPlayStation3:      {Name: "Sony PlayStation 3", ReversedRingcodes: true},
	SystemSonyPlayStation4:      {Name: "Sony PlayStation 4", ReversedRingcodes: true},
	SystemSonyPlayStation5:      {Name: "Sony PlayStation 5", ReversedRingcodes: true},
	SystemSonyPSP:               {Name: "Sony PlayStation Portable"},
	SystemMicrosoftXbox:         {Name: "Microsoft Xbox", XGD: true},
	SystemMicrosoftXbox360:      {Name: "Microsoft Xbox 360", XGD: true},
	SystemMicrosoftXboxOne:      {Name: "Microsoft Xbox One"},
	SystemMicrosoftXboxSeriesXS: {Name: "Microsoft Xbox Series X|S"},
	SystemNintendoGameCube:      {Name: "Nintendo GameCube"},
	SystemNintendoWii:           {Name: "Nintendo Wii"},
	SystemNintendoWiiU:          {Name: "Nintendo Wii U"},
	SystemSegaDreamcast:         {Name: "Sega Dreamcast"},
	SystemSegaSaturn:            {Name: "Sega Saturn"},
	SystemSegaMegaCD:            {Name: "Sega Mega CD & Sega CD"},
	SystemNECPCEngineCD:         {Name: "NEC PC Engine CD & TurboGrafx CD"},
	SystemSNKNeoGeoCD:           {Name: "SNK Neo Geo CD"},
	SystemPanasonic3DO:          {Name: "Panasonic 3DO Interactive Multiplayer"},
	SystemPhilipsCDi:            {Name: "Philips CD-i"},
	SystemIBMPCCompatible:       {Name: "IBM PC compatible"},
	SystemAppleMacintosh:        {Name: "Apple Macintosh"},
	SystemAtariJaguarCD:         {Name: "Atari Jaguar CD Interactive Multimedia System"},
	SystemBandaiPlaydiaQIS:      {Name: "Bandai Playdia Quick Interactive System"},
	SystemAudioCD:               {Name: "Audio CD"},
	SystemDVDVideo:              {Name: "DVD-Video"},
	SystemBDVideo:               {Name: "BD-Video"},
	SystemHDDVDVideo:            {Name: "HD DVD-Video"},
}

// Info returns the metadata for s. Unknown systems yield a zero value whose
// Name is the raw identifier.
func (s System) Info() SystemInfo {
	if info, ok := systems[s]; ok {
		return info
	}
	return SystemInfo{Name: string(s)}
}

// LongName returns the display name of s.
func (s System) LongName() string { return s.Info().Name }

// Known reports whether s is in the system table.
func (s System) Known() bool {
	_, ok := systems[s]
	return ok
}

// ParseSystem resolves a short identifier or display name.
func ParseSystem(value string) (System, bool) {
	if _, ok := systems[System(value)]; ok {
		return System(value), true
	}
	for sys, info := range systems {
		if foldEqual(string(sys), value) || foldEqual(info.Name, value) {
			return sys, true
		}
	}
	return "", false
}
