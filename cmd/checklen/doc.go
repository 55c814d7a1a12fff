// 14 Oct 2026
/*

checklen compares the number of residues in each finished structure
with the rosetta model it should match and prints a warning if they
differ.

Usage:
 checklen [-i proteins.txt] [-d final_dataset] [-s FixedModeller] [-l log]

A protein whose files cannot be read is reported and the others are
still checked. The exit status is then non-zero.

*/
package main
