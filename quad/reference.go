package quad

// refPi is the accepted value of pi to 100 decimal places, used for
// comparison output and accuracy checks.
const refPi = "3." +
	"14159265358979323846264338327950288419716939937510" +
	"58209749445923078164062862089986280348253421170679"

// Reference returns the accepted value of pi truncated (not rounded) to
// n fractional digits, capped at the 100 digits known to the package.
// For n < 1 it returns "3".
func Reference(n int) string {
	if n < 1 {
		return refPi[:1]
	}
	if n > len(refPi)-2 {
		n = len(refPi) - 2
	}
	return refPi[:2+n]
}
