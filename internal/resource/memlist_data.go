package resource

// amigaMemEntry mirrors one row of the static resource directories built into
// the Amiga and Atari releases, which ship without a memlist.bin file.
type amigaMemEntry struct {
	Type         uint8
	Bank         uint8
	Offset       uint32
	PackedSize   uint32
	UnpackedSize uint32
}

var memListAmigaFR = [146]amigaMemEntry{
	{0, 0x1, 0x000000, 0x0000, 0x0000},
	{0, 0x1, 0x000000, 0x1A3C, 0x1A3C},
	{0, 0x1, 0x001A3C, 0x2E34, 0x2E34},
	{0, 0x1, 0x004870, 0x69F8, 0x69F8},
	{0, 0x1, 0x00B268, 0x45CE, 0x45CE},
	{0, 0x1, 0x00F836, 0x0EFA, 0x0EFA},
	{0, 0x1, 0x010730, 0x0D26, 0x0D26},
	{1, 0x1, 0x011456, 0x0494, 0x3CC0},
	{0, 0x2, 0x000000, 0x2674, 0x2674},
	{0, 0x1, 0x0118EA, 0x2BB6, 0x2BB6},
	{0, 0x1, 0x0144A0, 0x2BB4, 0x2BB4},
	{0, 0x1, 0x017054, 0x0426, 0x0426},
	{0, 0x1, 0x01747A, 0x1852, 0x1852},
	{0, 0x1, 0x018CCC, 0x0594, 0x0594},
	{0, 0x1, 0x019260, 0x13F0, 0x13F0},
	{0, 0x1, 0x01A650, 0x079E, 0x079E},
	{0, 0x2, 0x002674, 0x56A2, 0x56A2},
	{6, 0xC, 0x000000, 0x6214, 0x6214},
	{2, 0x5, 0x000000, 0x2410, 0x7D00},
	{2, 0x5, 0x002410, 0x7D00, 0x7D00},
	{3, 0x1, 0x01ADEE, 0x0800, 0x0800},
	{4, 0x1, 0x01B5EE, 0x0D2A, 0x0D2A},
	{5, 0x1, 0x01C318, 0x107C, 0x107C},
	{3, 0x1, 0x01D394, 0x0800, 0x0800},
	{4, 0x1, 0x01DB94, 0x2530, 0x2530},
	{5, 0x1, 0x0200C4, 0xFE7A, 0xFE7A},
	{3, 0x2, 0x007D16, 0x0800, 0x0800},
	{4, 0x2, 0x008516, 0x4BD0, 0x4BD0},
	{5, 0x2, 0x00D0E6, 0xFDBA, 0xFDBA},
	{3, 0xD, 0x000000, 0x0800, 0x0800},
	{4, 0xD, 0x000800, 0x974A, 0x974A},
	{5, 0xD, 0x009F4A, 0xD1D8, 0xD1D8},
	{3, 0x3, 0x000000, 0x0800, 0x0800},
	{4, 0x3, 0x000800, 0xED30, 0xED30},
	{5, 0x3, 0x00F530, 0xFEF6, 0xFEF6},
	{3, 0xA, 0x000000, 0x0800, 0x0800},
	{4, 0xA, 0x000800, 0x1B00, 0x1B00},
	{5, 0xA, 0x002300, 0x5E58, 0x5E58},
	{3, 0xA, 0x008158, 0x0800, 0x0800},
	{4, 0xA, 0x008958, 0x99D8, 0x99D8},
	{5, 0xA, 0x012330, 0xFF9A, 0xFF9A},
	{3, 0xB, 0x000000, 0x0800, 0x0800},
	{4, 0xB, 0x000800, 0x09F4, 0x09F4},
	{5, 0xB, 0x0011F4, 0x4E36, 0x4E36},
	{0, 0x1, 0x02FF3E, 0x0372, 0x0372},
	{0, 0x2, 0x01CEA0, 0x1E04, 0x1E04},
	{0, 0x1, 0x0302B0, 0x08EA, 0x08EA},
	{0, 0x1, 0x030B9A, 0x1A46, 0x1A46},
	{0, 0x2, 0x01ECA4, 0x343E, 0x343E},
	{0, 0x2, 0x0220E2, 0x149E, 0x149E},
	{0, 0x2, 0x023580, 0x1866, 0x1866},
	{0, 0x1, 0x0325E0, 0x0266, 0x0266},
	{0, 0x1, 0x000000, 0x0000, 0x0000},
	{0, 0x2, 0x024DE6, 0x01A8, 0x01A8},
	{0, 0x1, 0x032846, 0x1FEC, 0x1FEC},
	{0, 0x2, 0x024F8E, 0x13A4, 0x13A4},
	{0, 0x2, 0x026332, 0x15C4, 0x15C4},
	{0, 0x2, 0x0278F6, 0x0E2A, 0x0E2A},
	{0, 0x2, 0x028720, 0x0366, 0x0366},
	{0, 0x2, 0x028A86, 0x0078, 0x0078},
	{0, 0x2, 0x028AFE, 0x1392, 0x1392},
	{0, 0x2, 0x029E90, 0x06E0, 0x06E0},
	{0, 0x2, 0x02A570, 0x21AE, 0x21AE},
	{0, 0x1, 0x034832, 0x04FA, 0x04FA},
	{0, 0x1, 0x034D2C, 0x129E, 0x129E},
	{0, 0x1, 0x035FCA, 0x09B4, 0x09B4},
	{0, 0x2, 0x02C71E, 0x04EC, 0x04EC},
	{2, 0x4, 0x000000, 0x28FC, 0x7D00},
	{2, 0x4, 0x0028FC, 0x1C2C, 0x7D00},
	{2, 0x4, 0x004528, 0x1F20, 0x7D00},
	{2, 0x4, 0x006448, 0x22A8, 0x7D00},
	{2, 0x1, 0x03697E, 0x033C, 0x7D00},
	{2, 0x4, 0x0086F0, 0x2DA4, 0x7D00},
	{2, 0x4, 0x00B494, 0x3008, 0x7D00},
	{0, 0x2, 0x02CC0A, 0x03C0, 0x03C0},
	{0, 0x2, 0x02CFCA, 0x13E6, 0x13E6},
	{0, 0x2, 0x02E3B0, 0x04DE, 0x04DE},
	{0, 0x2, 0x02E88E, 0x05FA, 0x05FA},
	{0, 0x2, 0x02EE88, 0x025E, 0x025E},
	{0, 0x2, 0x02F0E6, 0x0642, 0x0642},
	{0, 0x2, 0x02F728, 0x19D0, 0x19D0},
	{0, 0x2, 0x0310F8, 0x00E8, 0x00E8},
	{0, 0x6, 0x000000, 0x1022, 0x1022},
	{2, 0x1, 0x036CBA, 0x1A8C, 0x7D00},
	{0, 0x2, 0x0311E0, 0x58AA, 0x58AA},
	{0, 0x6, 0x001022, 0x0990, 0x0990},
	{0, 0x6, 0x0019B2, 0x2C42, 0x2C42},
	{0, 0x6, 0x0045F4, 0x152C, 0x152C},
	{0, 0x6, 0x005B20, 0x05B4, 0x05B4},
	{0, 0x6, 0x0060D4, 0x23B4, 0x23B4},
	{0, 0x6, 0x008488, 0x1FA4, 0x1FA4},
	{0, 0x6, 0x00A42C, 0x0D20, 0x0D20},
	{0, 0x6, 0x00B14C, 0x0528, 0x0528},
	{0, 0x6, 0x00B674, 0x1608, 0x1608},
	{0, 0x6, 0x00CC7C, 0x01EA, 0x01EA},
	{0, 0x6, 0x00CE66, 0x07EA, 0x07EA},
	{0, 0x6, 0x00D650, 0x00E8, 0x00E8},
	{0, 0x7, 0x000000, 0x3978, 0x3978},
	{0, 0x7, 0x003978, 0x1178, 0x1178},
	{0, 0x7, 0x004AF0, 0x14B0, 0x14B0},
	{0, 0x7, 0x005FA0, 0x0AA4, 0x0AA4},
	{0, 0x7, 0x006A44, 0x02DA, 0x02DA},
	{0, 0x7, 0x006D1E, 0x2674, 0x2674},
	{0, 0x7, 0x009392, 0x12F0, 0x12F0},
	{0, 0x7, 0x00A682, 0x5D58, 0x5D58},
	{0, 0x7, 0x0103DA, 0xA222, 0xA222},
	{0, 0x8, 0x000000, 0x2E68, 0x2E68},
	{0, 0x8, 0x002E68, 0x51C6, 0x51C6},
	{0, 0x8, 0x00802E, 0x13E6, 0x13E6},
	{0, 0x8, 0x009414, 0x149E, 0x149E},
	{0, 0x8, 0x00A8B2, 0x58AA, 0x58AA},
	{0, 0x8, 0x01015C, 0x445C, 0x445C},
	{0, 0x7, 0x01A5FC, 0x0D90, 0x0D90},
	{0, 0x7, 0x01B38C, 0x09E4, 0x09E4},
	{0, 0x7, 0x01BD70, 0x198A, 0x198A},
	{0, 0x7, 0x01D6FA, 0x25D2, 0x25D2},
	{0, 0x8, 0x0145B8, 0x2430, 0x2430},
	{0, 0x8, 0x0169E8, 0x1316, 0x1316},
	{0, 0x8, 0x017CFE, 0x0220, 0x0220},
	{0, 0x8, 0x017F1E, 0x05EA, 0x05EA},
	{0, 0x8, 0x018508, 0x043C, 0x043C},
	{0, 0x8, 0x018944, 0x08EA, 0x08EA},
	{0, 0x8, 0x01922E, 0x1478, 0x1478},
	{0, 0x8, 0x01A6A6, 0x432E, 0x432E},
	{0, 0x8, 0x01E9D4, 0x06CE, 0x06CE},
	{3, 0x9, 0x000000, 0x0800, 0x0800},
	{4, 0x9, 0x000800, 0x0CC6, 0x0CC6},
	{5, 0x9, 0x0014C6, 0x13B8, 0x13B8},
	{0, 0x1, 0x038746, 0x189A, 0x189A},
	{0, 0x1, 0x039FE0, 0x07D8, 0x07D8},
	{0, 0x1, 0x03A7B8, 0x0462, 0x0462},
	{0, 0x1, 0x03AC1A, 0x0FA8, 0x0FA8},
	{0, 0xA, 0x0222CA, 0x672E, 0x672E},
	{0, 0x8, 0x000000, 0x0000, 0x0000},
	{0, 0x8, 0x000000, 0x0000, 0x0000},
	{0, 0x8, 0x000000, 0x0000, 0x0000},
	{0, 0x8, 0x01F0A2, 0x247C, 0x247C},
	{1, 0x2, 0x036A8A, 0x08C0, 0x08C0},
	{1, 0xB, 0x00602A, 0x08C4, 0x3CC0},
	{0, 0xA, 0x0289F8, 0x4F5A, 0x4F5A},
	{0, 0xA, 0x02D952, 0x4418, 0x4418},
	{0, 0xA, 0x031D6A, 0x293C, 0x293C},
	{0, 0xA, 0x0346A6, 0x3FC8, 0x3FC8},
	{0, 0x8, 0x000000, 0x0000, 0x0000},
	{2, 0xB, 0x0068EE, 0x2F94, 0x7D00},
	{2, 0xB, 0x009882, 0x33C0, 0x7D00},
}

var memListAmigaEN = [146]amigaMemEntry{
	{0, 0x1, 0x000000, 0x0000, 0x0000},
	{0, 0x1, 0x000000, 0x1A3C, 0x1A3C},
	{0, 0x1, 0x001A3C, 0x2E34, 0x2E34},
	{0, 0x1, 0x004870, 0x69F8, 0x69F8},
	{0, 0x1, 0x00B268, 0x45CE, 0x45CE},
	{0, 0x1, 0x00F836, 0x0EFA, 0x0EFA},
	{0, 0x1, 0x010730, 0x0D26, 0x0D26},
	{1, 0x1, 0x011456, 0x0494, 0x3CC0},
	{0, 0x2, 0x000000, 0x2674, 0x2674},
	{0, 0x1, 0x0118EA, 0x2BB6, 0x2BB6},
	{0, 0x1, 0x0144A0, 0x2BB4, 0x2BB4},
	{0, 0x1, 0x017054, 0x0426, 0x0426},
	{0, 0x1, 0x01747A, 0x1852, 0x1852},
	{0, 0x1, 0x018CCC, 0x0594, 0x0594},
	{0, 0x1, 0x019260, 0x13F0, 0x13F0},
	{0, 0x1, 0x01A650, 0x079E, 0x079E},
	{0, 0x2, 0x002674, 0x56A2, 0x56A2},
	{6, 0xC, 0x000000, 0x6214, 0x6214},
	{2, 0x5, 0x000000, 0x2410, 0x7D00},
	{2, 0x5, 0x002410, 0x7D00, 0x7D00},
	{3, 0x1, 0x01ADEE, 0x0800, 0x0800},
	{4, 0x1, 0x01B5EE, 0x0DD8, 0x0DD8},
	{5, 0x1, 0x01C3C6, 0x1090, 0x1090},
	{3, 0x1, 0x01D456, 0x0800, 0x0800},
	{4, 0x1, 0x01DC56, 0x2530, 0x2530},
	{5, 0x1, 0x020186, 0xFE7A, 0xFE7A},
	{3, 0x2, 0x007D16, 0x0800, 0x0800},
	{4, 0x2, 0x008516, 0x4C02, 0x4C02},
	{5, 0x2, 0x00D118, 0xFDBA, 0xFDBA},
	{3, 0xD, 0x000000, 0x0800, 0x0800},
	{4, 0xD, 0x000800, 0x98B6, 0x98B6},
	{5, 0xD, 0x00A0B6, 0xD1D8, 0xD1D8},
	{3, 0x3, 0x000000, 0x0800, 0x0800},
	{4, 0x3, 0x000800, 0xEE5E, 0xEE5E},
	{5, 0x3, 0x00F65E, 0xFD08, 0xFD08},
	{3, 0xA, 0x000000, 0x0800, 0x0800},
	{4, 0xA, 0x000800, 0x1B00, 0x1B00},
	{5, 0xA, 0x002300, 0x5E58, 0x5E58},
	{3, 0xA, 0x008158, 0x0800, 0x0800},
	{4, 0xA, 0x008958, 0x99DC, 0x99DC},
	{5, 0xA, 0x012334, 0xFF9A, 0xFF9A},
	{3, 0xB, 0x000000, 0x0800, 0x0800},
	{4, 0xB, 0x000800, 0x09F4, 0x09F4},
	{5, 0xB, 0x0011F4, 0x4E3A, 0x4E3A},
	{0, 0x1, 0x030000, 0x0372, 0x0372},
	{0, 0x2, 0x01CED2, 0x1E04, 0x1E04},
	{0, 0x1, 0x030372, 0x08EA, 0x08EA},
	{0, 0x1, 0x030C5C, 0x1A46, 0x1A46},
	{0, 0x2, 0x01ECD6, 0x343E, 0x343E},
	{0, 0x2, 0x022114, 0x149E, 0x149E},
	{0, 0x2, 0x0235B2, 0x1866, 0x1866},
	{0, 0x1, 0x0326A2, 0x0266, 0x0266},
	{0, 0x1, 0x000000, 0x0000, 0x0000},
	{0, 0x2, 0x024E18, 0x01A8, 0x01A8},
	{0, 0x1, 0x032908, 0x1FEC, 0x1FEC},
	{0, 0x2, 0x024FC0, 0x13A4, 0x13A4},
	{0, 0x2, 0x026364, 0x15C4, 0x15C4},
	{0, 0x2, 0x027928, 0x0E2A, 0x0E2A},
	{0, 0x2, 0x028752, 0x0366, 0x0366},
	{0, 0x2, 0x028AB8, 0x0078, 0x0078},
	{0, 0x2, 0x028B30, 0x1392, 0x1392},
	{0, 0x2, 0x029EC2, 0x06E0, 0x06E0},
	{0, 0x2, 0x02A5A2, 0x21AE, 0x21AE},
	{0, 0x1, 0x0348F4, 0x04FA, 0x04FA},
	{0, 0x1, 0x034DEE, 0x129E, 0x129E},
	{0, 0x1, 0x03608C, 0x09B4, 0x09B4},
	{0, 0x2, 0x02C750, 0x04EC, 0x04EC},
	{2, 0x4, 0x000000, 0x28FC, 0x7D00},
	{2, 0x4, 0x0028FC, 0x1C2C, 0x7D00},
	{2, 0x4, 0x004528, 0x1F20, 0x7D00},
	{2, 0x4, 0x006448, 0x22A8, 0x7D00},
	{2, 0x1, 0x036A40, 0x033C, 0x7D00},
	{2, 0x4, 0x0086F0, 0x2DA4, 0x7D00},
	{2, 0x4, 0x00B494, 0x3008, 0x7D00},
	{0, 0x2, 0x02CC3C, 0x03C0, 0x03C0},
	{0, 0x2, 0x02CFFC, 0x13E6, 0x13E6},
	{0, 0x2, 0x02E3E2, 0x04DE, 0x04DE},
	{0, 0x2, 0x02E8C0, 0x05FA, 0x05FA},
	{0, 0x2, 0x02EEBA, 0x025E, 0x025E},
	{0, 0x2, 0x02F118, 0x0642, 0x0642},
	{0, 0x2, 0x02F75A, 0x19D0, 0x19D0},
	{0, 0x2, 0x03112A, 0x00E8, 0x00E8},
	{0, 0x6, 0x000000, 0x1022, 0x1022},
	{2, 0x1, 0x036D7C, 0x1A8C, 0x7D00},
	{0, 0x2, 0x031212, 0x58AA, 0x58AA},
	{0, 0x6, 0x001022, 0x0990, 0x0990},
	{0, 0x6, 0x0019B2, 0x2C42, 0x2C42},
	{0, 0x6, 0x0045F4, 0x152C, 0x152C},
	{0, 0x6, 0x005B20, 0x05B4, 0x05B4},
	{0, 0x6, 0x0060D4, 0x23B4, 0x23B4},
	{0, 0x6, 0x008488, 0x1FA4, 0x1FA4},
	{0, 0x6, 0x00A42C, 0x0D20, 0x0D20},
	{0, 0x6, 0x00B14C, 0x0528, 0x0528},
	{0, 0x6, 0x00B674, 0x1608, 0x1608},
	{0, 0x6, 0x00CC7C, 0x01EA, 0x01EA},
	{0, 0x6, 0x00CE66, 0x07EA, 0x07EA},
	{0, 0x6, 0x00D650, 0x00E8, 0x00E8},
	{0, 0x7, 0x000000, 0x3978, 0x3978},
	{0, 0x7, 0x003978, 0x1178, 0x1178},
	{0, 0x7, 0x004AF0, 0x14B0, 0x14B0},
	{0, 0x7, 0x005FA0, 0x0AA4, 0x0AA4},
	{0, 0x7, 0x006A44, 0x02DA, 0x02DA},
	{0, 0x7, 0x006D1E, 0x2674, 0x2674},
	{0, 0x7, 0x009392, 0x12F0, 0x12F0},
	{0, 0x7, 0x00A682, 0x5D58, 0x5D58},
	{0, 0x7, 0x0103DA, 0xA222, 0xA222},
	{0, 0x8, 0x000000, 0x2E68, 0x2E68},
	{0, 0x8, 0x002E68, 0x51C6, 0x51C6},
	{0, 0x8, 0x00802E, 0x13E6, 0x13E6},
	{0, 0x8, 0x009414, 0x149E, 0x149E},
	{0, 0x8, 0x00A8B2, 0x58AA, 0x58AA},
	{0, 0x8, 0x01015C, 0x445C, 0x445C},
	{0, 0x7, 0x01A5FC, 0x0D90, 0x0D90},
	{0, 0x7, 0x01B38C, 0x09E4, 0x09E4},
	{0, 0x7, 0x01BD70, 0x198A, 0x198A},
	{0, 0x7, 0x01D6FA, 0x25D2, 0x25D2},
	{0, 0x8, 0x0145B8, 0x2430, 0x2430},
	{0, 0x8, 0x0169E8, 0x1316, 0x1316},
	{0, 0x8, 0x017CFE, 0x0220, 0x0220},
	{0, 0x8, 0x017F1E, 0x05EA, 0x05EA},
	{0, 0x8, 0x018508, 0x043C, 0x043C},
	{0, 0x8, 0x018944, 0x08EA, 0x08EA},
	{0, 0x8, 0x01922E, 0x1478, 0x1478},
	{0, 0x8, 0x01A6A6, 0x432E, 0x432E},
	{0, 0x8, 0x01E9D4, 0x06CE, 0x06CE},
	{3, 0x9, 0x000000, 0x0800, 0x0800},
	{4, 0x9, 0x000800, 0x0CC6, 0x0CC6},
	{5, 0x9, 0x0014C6, 0x13B8, 0x13B8},
	{0, 0x1, 0x038808, 0x189A, 0x189A},
	{0, 0x1, 0x03A0A2, 0x07D8, 0x07D8},
	{0, 0x1, 0x03A87A, 0x0462, 0x0462},
	{0, 0x1, 0x03ACDC, 0x0FA8, 0x0FA8},
	{0, 0xA, 0x0222CE, 0x672E, 0x672E},
	{0, 0x8, 0x000000, 0x0000, 0x0000},
	{0, 0x8, 0x000000, 0x0000, 0x0000},
	{0, 0x8, 0x000000, 0x0000, 0x0000},
	{0, 0x8, 0x01F0A2, 0x247C, 0x247C},
	{1, 0x2, 0x036ABC, 0x08C0, 0x08C0},
	{1, 0xB, 0x00602E, 0x08C4, 0x3CC0},
	{0, 0xA, 0x0289FC, 0x4F5A, 0x4F5A},
	{0, 0xA, 0x02D956, 0x4418, 0x4418},
	{0, 0xA, 0x031D6E, 0x293C, 0x293C},
	{0, 0xA, 0x0346AA, 0x3FC8, 0x3FC8},
	{0, 0x8, 0x000000, 0x0000, 0x0000},
	{2, 0xB, 0x0068F2, 0x2F94, 0x7D00},
	{2, 0xB, 0x009886, 0x33C0, 0x7D00},
}

var memListAtariEN = [146]amigaMemEntry{
	{0, 0x1, 0x000000, 0x0000, 0x0000},
	{0, 0x1, 0x000000, 0x1A3C, 0x1A3C},
	{0, 0x1, 0x001A3C, 0x2E34, 0x2E34},
	{0, 0x1, 0x004870, 0x69F8, 0x69F8},
	{0, 0x1, 0x000000, 0x0000, 0x0000},
	{0, 0x1, 0x00B268, 0x0EFA, 0x0EFA},
	{0, 0x1, 0x00C162, 0x0D26, 0x0D26},
	{1, 0x1, 0x00CE88, 0x0494, 0x3CC0},
	{0, 0x2, 0x000000, 0x2674, 0x2674},
	{0, 0x1, 0x00D31C, 0x2BB6, 0x2BB6},
	{0, 0x1, 0x00FED2, 0x2BB4, 0x2BB4},
	{0, 0x1, 0x012A86, 0x0426, 0x0426},
	{0, 0x1, 0x012EAC, 0x1852, 0x1852},
	{0, 0x1, 0x0146FE, 0x0594, 0x0594},
	{0, 0x1, 0x014C92, 0x13F0, 0x13F0},
	{0, 0x1, 0x016082, 0x079E, 0x079E},
	{0, 0x2, 0x002674, 0x56A2, 0x56A2},
	{6, 0xC, 0x000000, 0x6214, 0x6214},
	{2, 0x5, 0x000000, 0x0000, 0x0000},
	{2, 0x5, 0x000000, 0x0000, 0x0000},
	{3, 0x1, 0x016820, 0x0800, 0x0800},
	{4, 0x1, 0x017020, 0x0DD8, 0x0DD8},
	{5, 0x1, 0x017DF8, 0x1090, 0x1090},
	{3, 0x1, 0x018E88, 0x0800, 0x0800},
	{4, 0x1, 0x019688, 0x2530, 0x2530},
	{5, 0x1, 0x01BBB8, 0xFE7A, 0xFE7A},
	{3, 0x2, 0x007D16, 0x0800, 0x0800},
	{4, 0x2, 0x008516, 0x4C02, 0x4C02},
	{5, 0x2, 0x00D118, 0xFDBA, 0xFDBA},
	{3, 0xD, 0x000000, 0x0800, 0x0800},
	{4, 0xD, 0x000800, 0x98B6, 0x98B6},
	{5, 0xD, 0x00A0B6, 0xD1D8, 0xD1D8},
	{3, 0x3, 0x000000, 0x0800, 0x0800},
	{4, 0x3, 0x000800, 0xEE5E, 0xEE5E},
	{5, 0x3, 0x00F65E, 0xFD08, 0xFD08},
	{3, 0xA, 0x000000, 0x0800, 0x0800},
	{4, 0xA, 0x000800, 0x1B00, 0x1B00},
	{5, 0xA, 0x002300, 0x5E58, 0x5E58},
	{3, 0xA, 0x008158, 0x0800, 0x0800},
	{4, 0xA, 0x008958, 0x99DC, 0x99DC},
	{5, 0xA, 0x012334, 0xFF9A, 0xFF9A},
	{3, 0xB, 0x000000, 0x0800, 0x0800},
	{4, 0xB, 0x000800, 0x09F4, 0x09F4},
	{5, 0xB, 0x0011F4, 0x4E3A, 0x4E3A},
	{0, 0x1, 0x02BA32, 0x0372, 0x0372},
	{0, 0x2, 0x000000, 0x0000, 0x0000},
	{0, 0x1, 0x02BDA4, 0x08EA, 0x08EA},
	{0, 0x1, 0x02C68E, 0x1A46, 0x1A46},
	{0, 0x2, 0x01CED2, 0x343E, 0x343E},
	{0, 0x2, 0x020310, 0x149E, 0x149E},
	{0, 0x2, 0x0217AE, 0x1866, 0x1866},
	{0, 0x1, 0x02E0D4, 0x0266, 0x0266},
	{0, 0x1, 0x000000, 0x0000, 0x0000},
	{0, 0x2, 0x023014, 0x01A8, 0x01A8},
	{0, 0x1, 0x02E33A, 0x1FEC, 0x1FEC},
	{0, 0x2, 0x000000, 0x0000, 0x0000},
	{0, 0x2, 0x000000, 0x0000, 0x0000},
	{0, 0x2, 0x0231BC, 0x0E2A, 0x0E2A},
	{0, 0x2, 0x023FE6, 0x0366, 0x0366},
	{0, 0x2, 0x02434C, 0x0078, 0x0078},
	{0, 0x2, 0x0243C4, 0x1392, 0x1392},
	{0, 0x2, 0x025756, 0x06E0, 0x06E0},
	{0, 0x2, 0x025E36, 0x21AE, 0x21AE},
	{0, 0x1, 0x030326, 0x04FA, 0x04FA},
	{0, 0x1, 0x030820, 0x129E, 0x129E},
	{0, 0x1, 0x031ABE, 0x09B4, 0x09B4},
	{0, 0x2, 0x027FE4, 0x04EC, 0x04EC},
	{2, 0x4, 0x000000, 0x2654, 0x7D00},
	{2, 0x4, 0x002654, 0x1920, 0x7D00},
	{2, 0x4, 0x003F74, 0x1A78, 0x7D00},
	{2, 0x4, 0x0059EC, 0x1EC4, 0x7D00},
	{2, 0x1, 0x032472, 0x045C, 0x7D00},
	{2, 0x4, 0x0078B0, 0x2760, 0x7D00},
	{2, 0x4, 0x00A010, 0x2B74, 0x7D00},
	{0, 0x2, 0x0284D0, 0x03C0, 0x03C0},
	{0, 0x2, 0x028890, 0x13E6, 0x13E6},
	{0, 0x2, 0x029C76, 0x04DE, 0x04DE},
	{0, 0x2, 0x02A154, 0x05FA, 0x05FA},
	{0, 0x2, 0x02A74E, 0x025E, 0x025E},
	{0, 0x2, 0x02A9AC, 0x0642, 0x0642},
	{0, 0x2, 0x02AFEE, 0x19D0, 0x19D0},
	{0, 0x2, 0x02C9BE, 0x00E8, 0x00E8},
	{0, 0x6, 0x000000, 0x1022, 0x1022},
	{2, 0x1, 0x0328CE, 0x19FC, 0x7D00},
	{0, 0x2, 0x02CAA6, 0x58AA, 0x58AA},
	{0, 0x6, 0x001022, 0x0990, 0x0990},
	{0, 0x6, 0x0019B2, 0x2C42, 0x2C42},
	{0, 0x6, 0x0045F4, 0x152C, 0x152C},
	{0, 0x6, 0x005B20, 0x05B4, 0x05B4},
	{0, 0x6, 0x0060D4, 0x23B4, 0x23B4},
	{0, 0x6, 0x008488, 0x1FA4, 0x1FA4},
	{0, 0x6, 0x00A42C, 0x0D20, 0x0D20},
	{0, 0x6, 0x00B14C, 0x0528, 0x0528},
	{0, 0x6, 0x00B674, 0x1608, 0x1608},
	{0, 0x6, 0x00CC7C, 0x01EA, 0x01EA},
	{0, 0x6, 0x00CE66, 0x07EA, 0x07EA},
	{0, 0x6, 0x00D650, 0x00E8, 0x00E8},
	{0, 0x7, 0x000000, 0x3978, 0x3978},
	{0, 0x7, 0x003978, 0x1178, 0x1178},
	{0, 0x7, 0x004AF0, 0x14B0, 0x14B0},
	{0, 0x7, 0x005FA0, 0x0AA4, 0x0AA4},
	{0, 0x7, 0x006A44, 0x02DA, 0x02DA},
	{0, 0x7, 0x006D1E, 0x2674, 0x2674},
	{0, 0x7, 0x009392, 0x12F0, 0x12F0},
	{0, 0x7, 0x00A682, 0x5D58, 0x5D58},
	{0, 0x7, 0x000000, 0x0000, 0x0000},
	{0, 0x8, 0x000000, 0x2E68, 0x2E68},
	{0, 0x8, 0x002E68, 0x51C6, 0x51C6},
	{0, 0x8, 0x00802E, 0x13E6, 0x13E6},
	{0, 0x8, 0x009414, 0x149E, 0x149E},
	{0, 0x8, 0x00A8B2, 0x58AA, 0x58AA},
	{0, 0x8, 0x000000, 0x0000, 0x0000},
	{0, 0x7, 0x0103DA, 0x0D90, 0x0D90},
	{0, 0x7, 0x01116A, 0x09E4, 0x09E4},
	{0, 0x7, 0x011B4E, 0x198A, 0x198A},
	{0, 0x7, 0x0134D8, 0x25D2, 0x25D2},
	{0, 0x8, 0x01015C, 0x2430, 0x2430},
	{0, 0x8, 0x01258C, 0x1316, 0x1316},
	{0, 0x8, 0x0138A2, 0x0220, 0x0220},
	{0, 0x8, 0x013AC2, 0x05EA, 0x05EA},
	{0, 0x8, 0x0140AC, 0x043C, 0x043C},
	{0, 0x8, 0x0144E8, 0x08EA, 0x08EA},
	{0, 0x8, 0x014DD2, 0x1478, 0x1478},
	{0, 0x8, 0x000000, 0x0000, 0x0000},
	{0, 0x8, 0x01624A, 0x06CE, 0x06CE},
	{3, 0x9, 0x000000, 0x0800, 0x0800},
	{4, 0x9, 0x000800, 0x0CC6, 0x0CC6},
	{5, 0x9, 0x0014C6, 0x13B8, 0x13B8},
	{0, 0x1, 0x0342CA, 0x189A, 0x189A},
	{0, 0x1, 0x035B64, 0x07D8, 0x07D8},
	{0, 0x1, 0x03633C, 0x0462, 0x0462},
	{0, 0x1, 0x03679E, 0x0FA8, 0x0FA8},
	{0, 0xA, 0x0222CE, 0x672E, 0x672E},
	{0, 0x8, 0x000000, 0x0000, 0x0000},
	{0, 0x8, 0x000000, 0x0000, 0x0000},
	{0, 0x8, 0x000000, 0x0000, 0x0000},
	{0, 0x8, 0x016918, 0x247C, 0x247C},
	{1, 0x2, 0x032350, 0x08C0, 0x08C0},
	{1, 0xB, 0x00602E, 0x08C4, 0x3CC0},
	{0, 0xA, 0x0289FC, 0x4F5A, 0x4F5A},
	{0, 0xA, 0x02D956, 0x4418, 0x4418},
	{0, 0xA, 0x031D6E, 0x293C, 0x293C},
	{0, 0xA, 0x0346AA, 0x3FC8, 0x3FC8},
	{0, 0x8, 0x000000, 0x0000, 0x0000},
	{2, 0xB, 0x0068F2, 0x29C4, 0x7D00},
	{2, 0xB, 0x0092B6, 0x2C00, 0x7D00},
}

// memListParts names the palette, bytecode and shape-stream entries that make
// up each game part, indexed by part - 16000. A zero video2 column means the
// part has no second shape stream.
var memListParts = [10][4]uint8{
	{0x14, 0x15, 0x16, 0x00},
	{0x17, 0x18, 0x19, 0x00},
	{0x1A, 0x1B, 0x1C, 0x11},
	{0x1D, 0x1E, 0x1F, 0x11},
	{0x20, 0x21, 0x22, 0x11},
	{0x23, 0x24, 0x25, 0x00},
	{0x26, 0x27, 0x28, 0x11},
	{0x29, 0x2A, 0x2B, 0x11},
	{0x7D, 0x7E, 0x7F, 0x00},
	{0x7D, 0x7E, 0x7F, 0x00},
}
