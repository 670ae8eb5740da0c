package physconst

// SpeedOfLight is the speed of light in vacuum (m/s, exact by
// definition of the metre).
const SpeedOfLight = 299792458.0

// SolarMassSeconds is one solar mass expressed in geometrized time
// units, GM_sun/c^3 (seconds).
const SolarMassSeconds = 4.9255e-6

// SolarMassMeters is one solar mass expressed in geometrized length
// units, GM_sun/c^2 (metres).
const SolarMassMeters = 1.476625061404649406193430731479084713e3

// YearSeconds is one Julian year (seconds).
const YearSeconds = 3.15576e7

// MegaparsecSeconds is one megaparsec expressed as a light travel
// time (seconds), using the IAU 2015 parsec.
const MegaparsecSeconds = 1e6 * 3.0856775814913673e16 / SpeedOfLight

// EulerGamma is the Euler-Mascheroni constant.
const EulerGamma = 0.577215664901532860606512090082
