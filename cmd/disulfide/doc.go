// 14 Oct 2026
/*

disulfide reads a structure, finds cysteines whose SG atoms are closer
than the cutoff, calls them CYX and writes the structure out.

Usage:
 disulfide [options] in.pdb out.pdb [tleap.in]

Each bond is printed as the two residue indices, counting from 0, and
the SG-SG distance. If tleap.in is given, a tleap script is written with
a bond line for each pair. Input may be gzipped.

Flags:
  -c distance
    	Default 2.1 Angstrom.
  -p filename
    	Write a png picture of cysteine distances.
  -l filename
    	Log file.

Hydrogens are not removed. A cysteine without an SG atom is an error
and nothing is written.

*/
package main
