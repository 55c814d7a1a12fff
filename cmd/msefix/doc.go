// 14 Oct 2026
/*

msefix keeps the ATOM records of a structure, turns HETATM records of
selenomethionine (MSE) into ATOM records of methionine (MET) and drops
everything else. The selenium SE becomes SD. Columns after 67 of the
converted lines are lost.

Usage:
 msefix in.pdb [out.pdb]

Without out.pdb, output goes to standard output.

*/
package main
