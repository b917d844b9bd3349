package mac400

// Register numbers are taken from the MAC400 user manual, listing 5.12.3.
// All registers are 32 bits, stored as two 16-bit words in little-endian
// word order. Register 0 is reserved and has no entry; so are 150-154.
//
// The manual lists KVFY twice, at 134 and 138. Names must be unique for
// lookup, so the entry at 138 carries its unlisted sibling name KVFY0.

// Scale factors converting physical units to raw counts, from the register
// descriptions in listing 5.12.3.
const (
	velocityScale      = 2.77056      // raw counts per RPM (V_SOLL)
	accelScale         = 3.598133e-3  // raw counts per RPM/s (A_SOLL)
	torqueScale        = 341          // raw counts per % of nominal load (T_SOLL)
	velocityIstScale   = 0.17316      // raw counts per RPM (V_IST)
	velocityIst16Scale = 0.17316 * 16 // raw counts per RPM (V_IST_16)
	busVoltageScale    = 1 / 0.888    // raw counts per volt (U_BUS)
)

// registers is the full MAC400 register map, sorted ascending by number.
// The zero Codec is the default unsigned interpretation.
var registers = []Register{
	{Name: "PROG_VERSION", Num: 1},
	{Name: "MODE_REG", Num: 2, Codec: Codec{Kind: KindMode}},
	{Name: "P_SOLL", Num: 3, Codec: Signed},
	{Name: "P_NEW", Num: 4, Codec: Signed},
	{Name: "V_SOLL", Num: 5, Codec: ScaledBy(velocityScale, true)},
	{Name: "A_SOLL", Num: 6, Codec: ScaledBy(accelScale, true)},
	{Name: "T_SOLL", Num: 7, Codec: ScaledBy(torqueScale, false)},
	{Name: "P_FNC", Num: 8},
	{Name: "INDEX_OFFSET", Num: 9},
	{Name: "P_IST", Num: 10, Codec: Signed},
	{Name: "V_IST_16", Num: 11, Codec: ScaledBy(velocityIst16Scale, true)},
	{Name: "V_IST", Num: 12, Codec: ScaledBy(velocityIstScale, true)},
	{Name: "KVOUT", Num: 13},
	{Name: "GEARF1", Num: 14},
	{Name: "GEARF2", Num: 15},
	{Name: "I2T", Num: 16},
	{Name: "I2TLIM", Num: 17},
	{Name: "UIT", Num: 18},
	{Name: "UITLIM", Num: 19},
	{Name: "FLWERR", Num: 20},
	{Name: "U_24V", Num: 21},
	{Name: "FLWERRMAX", Num: 22},
	{Name: "UV_HANDLE", Num: 23},
	{Name: "FNCERR", Num: 24},
	{Name: "P_IST_TURNTAB", Num: 25},
	{Name: "FNCERRMAX", Num: 26},
	{Name: "TURNTAB_COUNT", Num: 27},
	{Name: "MIN_P_IST", Num: 28, Codec: Signed},
	{Name: "DEGC", Num: 29},
	{Name: "MAX_P_IST", Num: 30, Codec: Signed},
	{Name: "DEGCMAX", Num: 31},
	{Name: "ACC_EMERG", Num: 32},
	{Name: "INPOSWIN", Num: 33},
	{Name: "INPOSCNT", Num: 34},
	{Name: "ERR_STAT", Num: 35, Codec: Codec{Kind: KindBits}},
	{Name: "CNTRL_BITS", Num: 36},
	{Name: "START_MODE", Num: 37},
	{Name: "P_HOME", Num: 38},
	{Name: "HW_SETUP", Num: 39},
	{Name: "V_HOME", Num: 40},
	{Name: "T_HOME", Num: 41},
	{Name: "HOME_MODE", Num: 42},
	{Name: "P_REG_P", Num: 43},
	{Name: "V_REG_P", Num: 44},
	{Name: "A_REG_P", Num: 45},
	{Name: "T_REG_P", Num: 46},
	{Name: "L_REG_P", Num: 47},
	{Name: "Z_REG_P", Num: 48},
	{Name: "POS0", Num: 49},
	{Name: "CAPCOM0", Num: 50},
	{Name: "POS1", Num: 51},
	{Name: "CAPCOM1", Num: 52},
	{Name: "POS2", Num: 53},
	{Name: "CAPCOM2", Num: 54},
	{Name: "POS3", Num: 55},
	{Name: "CAPCOM3", Num: 56},
	{Name: "POS4", Num: 57},
	{Name: "CAPCOM4", Num: 58},
	{Name: "POS5", Num: 59},
	{Name: "CAPCOM5", Num: 60},
	{Name: "POS6", Num: 61},
	{Name: "CAPCOM6", Num: 62},
	{Name: "POS7", Num: 63},
	{Name: "CAPCOM7", Num: 64},
	{Name: "VEL0", Num: 65},
	{Name: "VEL1", Num: 66},
	{Name: "VEL2", Num: 67},
	{Name: "VEL3", Num: 68},
	{Name: "VEL4", Num: 69},
	{Name: "VEL5", Num: 70},
	{Name: "VEL6", Num: 71},
	{Name: "VEL7", Num: 72},
	{Name: "ACC0", Num: 73},
	{Name: "ACC1", Num: 74},
	{Name: "ACC2", Num: 75},
	{Name: "ACC3", Num: 76},
	{Name: "TQ0", Num: 77},
	{Name: "TQ1", Num: 78},
	{Name: "TQ2", Num: 79},
	{Name: "TQ3", Num: 80},
	{Name: "LOAD0", Num: 81},
	{Name: "LOAD1", Num: 82},
	{Name: "LOAD2", Num: 83},
	{Name: "LOAD3", Num: 84},
	{Name: "ZERO0", Num: 85},
	{Name: "ZERO1", Num: 86},
	{Name: "ZERO2", Num: 87},
	{Name: "ZERO3", Num: 88},
	{Name: "MODE0", Num: 89},
	{Name: "MODE1", Num: 90},
	{Name: "MODE2", Num: 91},
	{Name: "MODE3", Num: 92},
	{Name: "HWI0", Num: 93},
	{Name: "HWI1", Num: 94},
	{Name: "HWI2", Num: 95},
	{Name: "HWI3", Num: 96},
	{Name: "HWI4", Num: 97},
	{Name: "HWI5", Num: 98},
	{Name: "HWI6", Num: 99},
	{Name: "HWI70", Num: 100},
	{Name: "HWI80", Num: 101},
	{Name: "HWI90", Num: 102},
	{Name: "HWI100", Num: 103},
	{Name: "HWI110", Num: 104},
	{Name: "MAC00_TYP0", Num: 105},
	{Name: "MAC00_10", Num: 106},
	{Name: "MAC00_20", Num: 107},
	{Name: "MAC00_30", Num: 108},
	{Name: "MAC00_40", Num: 109},
	{Name: "MAC00_51", Num: 110},
	{Name: "MAC00_61", Num: 111},
	{Name: "MAC00_71", Num: 112},
	{Name: "MAC00_81", Num: 113},
	{Name: "MAC00_91", Num: 114},
	{Name: "MAC00_101", Num: 115},
	{Name: "MAC00_111", Num: 116},
	{Name: "MAC00_121", Num: 117},
	{Name: "MAC00_131", Num: 118},
	{Name: "MAC00_141", Num: 119},
	{Name: "MAC00_152", Num: 120},
	{Name: "KFF5", Num: 121},
	{Name: "KFF4", Num: 122},
	{Name: "KFF", Num: 123},
	{Name: "KFF2", Num: 124},
	{Name: "KFF1", Num: 125},
	{Name: "KFF0", Num: 126},
	{Name: "KVFX6", Num: 127},
	{Name: "KVFX5", Num: 128},
	{Name: "KVFX4", Num: 129},
	{Name: "KVFX3", Num: 130},
	{Name: "KVFX2", Num: 131},
	{Name: "KVFX1", Num: 132},
	{Name: "KVFY5", Num: 133},
	{Name: "KVFY", Num: 134},
	{Name: "KVFY3", Num: 135},
	{Name: "KVFY2", Num: 136},
	{Name: "KVFY1", Num: 137},
	{Name: "KVFY0", Num: 138},
	{Name: "KVB4", Num: 139},
	{Name: "KVB3", Num: 140},
	{Name: "KVB2", Num: 141},
	{Name: "KVB1", Num: 142},
	{Name: "KVB0", Num: 143},
	{Name: "KIFX2", Num: 144},
	{Name: "KIFX1", Num: 145},
	{Name: "KIFY1", Num: 146},
	{Name: "KIFY0", Num: 147},
	{Name: "KIB1", Num: 148},
	{Name: "KIB0", Num: 149},
	// registers 150-154 are reserved
	{Name: "ID_RESERVED", Num: 155},
	{Name: "S_ORDER", Num: 156},
	{Name: "OUTLOOPDIV", Num: 157},
	{Name: "SAMPLE1", Num: 158},
	{Name: "SAMPLE2", Num: 159},
	{Name: "SAMPLE3", Num: 160},
	{Name: "SAMPLE4", Num: 161},
	{Name: "REC_CNT", Num: 162},
	{Name: "V_EXT", Num: 163},
	{Name: "GV_EXT", Num: 164},
	{Name: "G_FNC", Num: 165},
	{Name: "FNC_OUT", Num: 166},
	{Name: "FF_OUT", Num: 167},
	{Name: "VB_OUT", Num: 168},
	{Name: "VF_OUT", Num: 169},
	{Name: "ANINP", Num: 170},
	{Name: "ANINP_OFFSET", Num: 171},
	{Name: "ELDEG_OFFSET", Num: 172},
	{Name: "PHASE_COMP", Num: 173},
	{Name: "AMPLITUDE", Num: 174},
	{Name: "MAN_I_NOM", Num: 175},
	{Name: "MAN_ALPHA", Num: 176},
	{Name: "UMEAS", Num: 177},
	{Name: "I_NOM", Num: 178},
	{Name: "PHI_SOLL", Num: 179},
	{Name: "IA_SOLL", Num: 180},
	{Name: "IB_SOLL", Num: 181},
	{Name: "IC_SOLL", Num: 182},
	{Name: "IA_IST", Num: 183},
	{Name: "IB_IST", Num: 184},
	{Name: "IC_IST", Num: 185},
	{Name: "IA_OFFSET", Num: 186},
	{Name: "IB_OFFSET", Num: 187},
	{Name: "KIA", Num: 188},
	{Name: "KIB", Num: 189},
	{Name: "ELDEG_IST", Num: 190},
	{Name: "V_ELDEG", Num: 191},
	{Name: "UA_VAL", Num: 192},
	{Name: "UB_VAL", Num: 193},
	{Name: "UC_VAL", Num: 194},
	{Name: "EMK_A", Num: 195},
	{Name: "EMK_B", Num: 196},
	{Name: "EMK_C", Num: 197},
	{Name: "U_BUS", Num: 198, Codec: ScaledBy(busVoltageScale, false)},
	{Name: "U_BUS_OFFSET", Num: 199},
	{Name: "TC0_CV1", Num: 200},
	{Name: "TC0_CV2", Num: 201},
	{Name: "MY_ADDR", Num: 202},
	{Name: "MOTOR_TYPE", Num: 203},
	{Name: "SERIAL_NUMBER", Num: 204},
	{Name: "HW_VERSION", Num: 205},
	{Name: "CHKSUM", Num: 206},
	{Name: "USEROUTVAL", Num: 207},
	{Name: "COMM_ERRS", Num: 208},
	{Name: "INDEX_IST", Num: 209},
	{Name: "HW_PLIM", Num: 210},
	{Name: "COMMAND_REG", Num: 211},
	{Name: "UART0_SETUP", Num: 212},
	{Name: "UART1_SETUP", Num: 213},
	{Name: "EXTENC_BITS", Num: 214},
	{Name: "INPUT_LEVELS", Num: 215},
	{Name: "ANINP1", Num: 216},
	{Name: "ANINP1_OFFSET", Num: 217},
	{Name: "ANINP2", Num: 218},
	{Name: "ANINP2_OFFSET", Num: 219},
	{Name: "ANINP3", Num: 220},
	{Name: "ANINP3_OFFSET", Num: 221},
	{Name: "IOSETUP", Num: 222},
	{Name: "ANOUT1", Num: 223},
	{Name: "ANOUT1_OFFSET", Num: 224},
	{Name: "P_OFFSET", Num: 225},
	{Name: "P_MULTITURN", Num: 226},
	{Name: "AIFILT_MAXSLOPE", Num: 227},
	{Name: "AIFILT_FILTFACT", Num: 228},
	{Name: "P_QUICK", Num: 229},
	{Name: "XREG_ADDR", Num: 230},
	{Name: "XREG_DATA", Num: 231},
}
