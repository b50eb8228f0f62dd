// Command ktx is the command line front end for the KTX2 validator.
package main

func main() {
	execute()
}
